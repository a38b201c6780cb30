package mocks

import (
	"fmt"
	"sync"

	"github.com/Kush-Singh-26/agora/builder/models"
)

// MockRenderer is a mock implementation of renderer.Renderer. Render
// returns Output[name] when set, otherwise a line naming the template.
type MockRenderer struct {
	mu        sync.Mutex
	Templates map[string]bool
	Output    map[string]string
	Errors    map[string]error
	Rendered  map[string][]models.Context
	CallCount map[string]int
}

// NewMockRenderer creates a mock that knows the given template names.
func NewMockRenderer(templates ...string) *MockRenderer {
	m := &MockRenderer{
		Templates: make(map[string]bool),
		Output:    make(map[string]string),
		Errors:    make(map[string]error),
		Rendered:  make(map[string][]models.Context),
		CallCount: make(map[string]int),
	}
	for _, t := range templates {
		m.Templates[t] = true
	}
	return m
}

func (m *MockRenderer) recordCall(method string) {
	if m.CallCount == nil {
		m.CallCount = make(map[string]int)
	}
	m.CallCount[method]++
}

// Render records the context and returns the canned output
func (m *MockRenderer) Render(name string, ctx models.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("Render")
	m.Rendered[name] = append(m.Rendered[name], ctx)

	if err := m.Errors[name]; err != nil {
		return "", err
	}
	if out, ok := m.Output[name]; ok {
		return out, nil
	}
	return fmt.Sprintf("<!-- %s -->", name), nil
}

// Has reports whether the template was registered
func (m *MockRenderer) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("Has")
	return m.Templates[name]
}

// Calls returns how many times Render ran for name
func (m *MockRenderer) Calls(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Rendered[name])
}
