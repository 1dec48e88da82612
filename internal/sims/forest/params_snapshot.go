package forest

import (
	"strconv"

	"forest-fire/internal/core"
)

// Parameters describes the fixed settings of the simulator.
func (s *Simulator) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("initial_tree_prob", "Initial tree chance", params.InitialTreeProb),
				floatParam("grow_prob", "Grow chance", params.GrowProb),
				floatParam("fire_prob", "Lightning chance", params.FireProb),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
