package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm  string
	DepthLimit int
	Duration   time.Duration
	Nodes      int // Positions visited, including leaves
	Leaves     int // Positions scored statically
	Stakes     int // Stakes simulated
	Raids      int // Raids simulated
	Cutoffs    int // Alpha-beta cut-offs
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	Value  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw
	FinalScore     int    // From the starting player's perspective
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(algorithm string, depthLimit int)
	AddNode()
	AddLeaf()
	AddStake()
	AddRaid()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	algorithm  string
	depthLimit int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	stakes     atomic.Int64
	raids      atomic.Int64
	cutoffs    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string, depthLimit int) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.depthLimit = depthLimit
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.stakes.Store(0)
	m.raids.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddStake() {
	m.stakes.Add(1)
}

func (m *collector) AddRaid() {
	m.raids.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm:  m.algorithm,
		DepthLimit: m.depthLimit,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Stakes:     int(m.stakes.Load()),
		Raids:      int(m.raids.Load()),
		Cutoffs:    int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string, depthLimit int) {}
func (m *dummyCollector) AddNode()                               {}
func (m *dummyCollector) AddLeaf()                               {}
func (m *dummyCollector) AddStake()                              {}
func (m *dummyCollector) AddRaid()                               {}
func (m *dummyCollector) AddCutoff()                             {}
func (m *dummyCollector) Complete() SearchMetric                 { return SearchMetric{} }
