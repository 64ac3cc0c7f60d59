package operator

import (
	"errors"
	"fmt"
	"sort"
)

// Parameter errors.
var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrComponentRange   = errors.New("parameter component out of range")
	ErrUnknownChoice    = errors.New("unknown menu choice")
)

// Key is one keyframe of an animated channel.
type Key struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// Channel is a single parameter component: a constant value, or keyframes
// interpolated linearly and held outside their range.
type Channel struct {
	Value float64
	Keys  []Key // Sorted by Time
}

// Eval returns the channel value at time t.
func (c Channel) Eval(t float64) float64 {
	n := len(c.Keys)
	if n == 0 {
		return c.Value
	}
	if t <= c.Keys[0].Time {
		return c.Keys[0].Value
	}
	if t >= c.Keys[n-1].Time {
		return c.Keys[n-1].Value
	}
	i := sort.Search(n, func(i int) bool { return c.Keys[i].Time > t })
	a, b := c.Keys[i-1], c.Keys[i]
	f := (t - a.Time) / (b.Time - a.Time)
	return a.Value + (b.Value-a.Value)*f
}

// Parameters holds the current values of an operator's parameters.
type Parameters struct {
	templates map[string]Template
	channels  map[string][]Channel
}

// NewParameters creates parameters initialized to the templates' defaults.
func NewParameters(templates []Template) *Parameters {
	p := &Parameters{
		templates: make(map[string]Template, len(templates)),
		channels:  make(map[string][]Channel, len(templates)),
	}
	for _, tpl := range templates {
		chans := make([]Channel, tpl.Size)
		for i := range chans {
			if i < len(tpl.Defaults) {
				chans[i].Value = tpl.Defaults[i]
			}
		}
		p.templates[tpl.Name] = tpl
		p.channels[tpl.Name] = chans
	}
	return p
}

func (p *Parameters) channel(name string, component int) (*Channel, error) {
	chans, ok := p.channels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	if component < 0 || component >= len(chans) {
		return nil, fmt.Errorf("%w: %s[%d]", ErrComponentRange, name, component)
	}
	return &chans[component], nil
}

// Set assigns constant values to the leading components of name, dropping
// any keyframes on them.
func (p *Parameters) Set(name string, values ...float64) error {
	for i, v := range values {
		ch, err := p.channel(name, i)
		if err != nil {
			return err
		}
		*ch = Channel{Value: v}
	}
	return nil
}

// SetBool assigns a toggle.
func (p *Parameters) SetBool(name string, v bool) error {
	if v {
		return p.Set(name, 1)
	}
	return p.Set(name, 0)
}

// SetChoice assigns a menu parameter by token or label.
func (p *Parameters) SetChoice(name, choice string) error {
	tpl, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
	}
	idx, ok := tpl.ChoiceIndex(choice)
	if !ok {
		return fmt.Errorf("%w: %s=%q", ErrUnknownChoice, name, choice)
	}
	return p.Set(name, float64(idx))
}

// SetKeys animates one component of name.
func (p *Parameters) SetKeys(name string, component int, keys []Key) error {
	ch, err := p.channel(name, component)
	if err != nil {
		return err
	}
	sorted := append([]Key(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	ch.Keys = sorted
	return nil
}

// EvalFloat evaluates one component of name at time t. Unknown parameters
// evaluate to 0.
func (p *Parameters) EvalFloat(name string, component int, t float64) float64 {
	ch, err := p.channel(name, component)
	if err != nil {
		return 0
	}
	return ch.Eval(t)
}

// EvalInt evaluates one component of name at time t, rounded to the nearest integer.
func (p *Parameters) EvalInt(name string, component int, t float64) int {
	v := p.EvalFloat(name, component, t)
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// Template returns the template of name.
func (p *Parameters) Template(name string) (Template, bool) {
	tpl, ok := p.templates[name]
	return tpl, ok
}
