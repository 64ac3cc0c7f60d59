package operator

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Table errors.
var (
	ErrUnknownOperator   = errors.New("unknown operator")
	ErrDuplicateOperator = errors.New("operator already registered")
)

// Definition describes an operator type.
type Definition struct {
	Name      string
	Label     string
	Templates []Template
	Generator bool // Takes no inputs
	New       func() Node
}

// Table is a registry of operator definitions keyed by name.
type Table struct {
	mu   sync.RWMutex
	defs map[string]*Definition
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{defs: make(map[string]*Definition)}
}

// Add registers def.
func (t *Table) Add(def *Definition) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.defs[def.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateOperator, def.Name)
	}
	t.defs[def.Name] = def
	return nil
}

// Lookup returns the definition registered under name.
func (t *Table) Lookup(name string) (*Definition, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	def, ok := t.defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, name)
	}
	return def, nil
}

// Names returns registered operator names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates a node of the named operator.
func (t *Table) Create(name string) (Node, error) {
	def, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}
	return def.New(), nil
}
