package operator

import (
	"fmt"

	"github.com/Faultbox/testmodel/internal/config"
)

// ApplyConfig copies configured parameter values onto p.
func ApplyConfig(p *Parameters, c config.ParametersConfig) error {
	if c.Model != "" {
		if err := p.SetChoice(ParmModelType, c.Model); err != nil {
			return err
		}
	}
	if c.Primitive != "" {
		primitive := c.Primitive
		if primitive == "polygon" {
			primitive = "poly"
		}
		if err := p.SetChoice(ParmPrimitiveType, primitive); err != nil {
			return err
		}
	}
	if err := p.SetBool(ParmKeepOriginalAxes, c.KeepOriginalAxes); err != nil {
		return err
	}
	if err := p.SetBool(ParmCreateNormals, c.CreateNormals); err != nil {
		return err
	}
	if err := p.Set(ParmCenter, c.Center[0], c.Center[1], c.Center[2]); err != nil {
		return err
	}

	if len(c.ScaleKeys) > 0 {
		keys := make([]Key, len(c.ScaleKeys))
		for i, k := range c.ScaleKeys {
			keys[i] = Key{Time: k.Time, Value: k.Value}
		}
		if err := p.SetKeys(ParmScale, 0, keys); err != nil {
			return fmt.Errorf("scale keys: %w", err)
		}
	} else if err := p.Set(ParmScale, c.Scale); err != nil {
		return err
	}
	return nil
}
