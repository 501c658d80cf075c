package ecs

// Stage orders groups of systems within a frame. Systems run stage by stage,
// and in registration order within a stage.
type Stage int

const (
	StageFirst Stage = iota
	// StagePreUpdate is where surfaces pick up the host's current size.
	StagePreUpdate
	// StageUpdate is where game logic moves cameras.
	StageUpdate
	// StagePostUpdate runs after sizes and camera transforms are final for
	// the frame; camera projections are derived here.
	StagePostUpdate
	StageLast
	stageCount
)

func (s Stage) String() string {
	switch s {
	case StageFirst:
		return "first"
	case StagePreUpdate:
		return "pre_update"
	case StageUpdate:
		return "update"
	case StagePostUpdate:
		return "post_update"
	case StageLast:
		return "last"
	default:
		return "unknown"
	}
}

type Scheduler struct {
	stages [stageCount][]System
}

// NewScheduler creates a scheduler with systems in the update stage.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	s.AddToStage(StageUpdate, system)
}

// AddToStage appends system to stage. Out-of-range stages are clamped.
func (s *Scheduler) AddToStage(stage Stage, system System) {
	if system == nil {
		return
	}
	stage = min(max(stage, StageFirst), StageLast)
	s.stages[stage] = append(s.stages[stage], system)
}

func (s *Scheduler) Update(w *World) {
	for _, systems := range s.stages {
		for _, system := range systems {
			system.Update(w)
		}
	}
}

// Systems returns every system in run order.
func (s *Scheduler) Systems() []System {
	var systems []System
	for _, stage := range s.stages {
		systems = append(systems, stage...)
	}
	return systems
}
