package loop

import (
	"sync"

	"github.com/pkg/errors"
)

var ErrEmptyStack = errors.New("error: empty stack")

// Stack is a stack of loop Info.
type Stack struct {
	sync.Mutex
	s []*Info
}

// NewStack creates a new Stack.
func NewStack() *Stack {
	return &Stack{s: []*Info{}}
}

// Push adds a new Info to the top of stack.
func (s *Stack) Push(i *Info) {
	s.Lock()
	defer s.Unlock()
	s.s = append(s.s, i)
}

// Pop removes an Info from top of stack.
func (s *Stack) Pop() (*Info, error) {
	s.Lock()
	defer s.Unlock()

	size := len(s.s)
	if size == 0 {
		return nil, ErrEmptyStack
	}
	l := s.s[size-1]
	s.s = s.s[:size-1]
	return l, nil
}

// Top returns the Info at the top of stack, or nil if the stack is empty.
func (s *Stack) Top() *Info {
	s.Lock()
	defer s.Unlock()
	if len(s.s) == 0 {
		return nil
	}
	return s.s[len(s.s)-1]
}

// IsEmpty returns true if stack is empty.
func (s *Stack) IsEmpty() bool {
	s.Lock()
	defer s.Unlock()
	return len(s.s) == 0
}
