package search

import (
	"errors"

	"github.com/AlgoLab/cppp/phylo"
)

// Engine explores the decision tree of character realizations over a
// preallocated stack of state slots. Slot k holds the state of level k;
// no slot is released until the run returns, so descending and
// backtracking never allocate a new state.
type Engine struct {
	states   []*phylo.State
	strategy Strategy
	opts     engineOptions
}

// New builds an engine for the given initial state. The stack depth is
// nOrig + 2·mOrig + 1: each character is realized at most twice (once
// activated, once freed) and each species nulled at most once, which
// bounds every root-to-leaf path.
func New(initial *phylo.State, strategy Strategy, opts ...Option) (*Engine, error) {
	if initial == nil {
		return nil, ErrNilState
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	inst := initial.Instance()
	depth := inst.NumSpecies() + 2*inst.NumCharacters() + 1
	e := &Engine{
		states:   make([]*phylo.State, depth),
		strategy: strategy,
		opts:     o,
	}
	for i := range e.states {
		e.states[i] = phylo.NewBlankState(inst)
	}
	if err := e.states[0].CopyFrom(initial); err != nil {
		return nil, err
	}

	return e, nil
}

// Run traverses the decision tree until a state with no alive species is
// reached or the tree is exhausted. The only error conditions are context
// cancellation and the (never expected) depth-bound violation.
func (e *Engine) Run() (*Result, error) {
	e.initNode(0)
	level := 0
	for level != -1 {
		select {
		case <-e.opts.ctx.Done():
			return nil, e.opts.ctx.Err()
		default:
		}

		if e.states[level].AliveSpecies == 0 {
			seq := e.witness(level)
			e.opts.log.Info().Ints("sequence", seq).Msg("solution found")

			return &Result{Found: true, Sequence: seq}, nil
		}
		var err error
		if level, err = e.nextNode(level); err != nil {
			return nil, err
		}
	}
	e.opts.log.Info().Msg("decision tree exhausted")

	return &Result{Found: false}, nil
}

// witness collects the characters realized along the current path: the
// choice recorded at each level below the solved one.
func (e *Engine) witness(level int) []int {
	seq := make([]int, level)
	for i := 0; i < level; i++ {
		seq[i] = e.states[i].Realized
	}

	return seq
}

// initNode prepares a freshly entered level: cleanup, component analysis,
// component selection, and the candidate queue in strategy order with the
// highest-degree character first. When no component qualifies the queue
// stays empty and the level reports solved through AliveSpecies == 0.
func (e *Engine) initNode(k int) {
	st := e.states[k]
	phylo.Cleanup(st)
	phylo.UpdateComponents(st)
	st.Queue = st.Queue[:0]
	st.Tried = st.Tried[:0]
	st.BacktrackLevel = k - 1

	if !phylo.ChooseCurrentComponent(st) {
		return
	}
	for _, c := range e.strategy(st) {
		if st.CharacterAlive[c] && st.CurrentComponent[st.CharacterVertex(c)] {
			st.Queue = append(st.Queue, c)
		}
	}
	// strict comparison keeps the first maximum, so the strategy order
	// still decides among equal degrees
	if len(st.Queue) > 1 {
		best := 0
		for i, c := range st.Queue {
			if st.RedBlack.Degree(st.CharacterVertex(c)) > st.RedBlack.Degree(st.CharacterVertex(st.Queue[best])) {
				best = i
			}
		}
		if best > 0 {
			front := st.Queue[best]
			copy(st.Queue[1:best+1], st.Queue[:best])
			st.Queue[0] = front
		}
	}
	e.opts.log.Debug().Int("level", k).Ints("queue", st.Queue).Msg("node initialized")
}

// nextNode advances the traversal by one step from the current level and
// returns the level to continue at (-1 ends the search).
func (e *Engine) nextNode(level int) (int, error) {
	cur := e.states[level]
	if len(cur.Queue) == 0 {
		e.opts.log.Debug().Int("level", level).Int("backtrack", cur.BacktrackLevel).Msg("level exhausted")

		return cur.BacktrackLevel, nil
	}

	c := cur.Queue[0]
	cur.Queue = cur.Queue[1:]
	cur.Realized = c
	cur.Tried = append(cur.Tried, c)

	if level+1 >= len(e.states) {
		return -1, ErrDepthExceeded
	}
	next := e.states[level+1]
	err := phylo.Realize(next, cur, c)
	if errors.Is(err, phylo.ErrInfeasible) {
		cur.Outcome = phylo.OpFail
		e.opts.log.Debug().Int("level", level).Int("character", c).Msg("infeasible realization")

		return level, nil
	}
	if err != nil {
		return -1, err
	}
	// the attempt's result is recorded on the attempting level as well:
	// the backjump walk below reads it from the ancestors of later nodes
	cur.Outcome = next.Outcome
	if e.opts.check {
		if cerr := next.Check(); cerr != nil {
			panic(cerr)
		}
	}
	if next.AliveSpecies == 0 {
		return level + 1, nil
	}

	e.initNode(level + 1)

	// Freed realizations are forced by graph structure, so exhaustion
	// below backtracks past them as a block: the jump target is the
	// deepest ancestor whose realization was an activation choice.
	b := level
	for b > 0 && e.states[b].Outcome != phylo.OpActivated {
		b--
	}
	next.BacktrackLevel = b

	// When this pick emptied the parent's queue, any ancestor whose whole
	// selected component died in this subtree is finished: jump below it.
	if len(cur.Queue) == 0 {
		for root := 0; root <= level; root++ {
			if e.componentBorders(root, level+1) {
				e.opts.log.Debug().Int("from", level+1).Int("to", root-1).Msg("component boundary jump")
				next.BacktrackLevel = root - 1

				break
			}
		}
	}

	return level + 1, nil
}

// componentBorders reports whether the subtree between root and leaf solved
// exactly the component selected at root: the characters that died along
// the way are precisely the root component's characters, and every
// intermediate selection stayed inside the root's component mask.
func (e *Engine) componentBorders(root, leaf int) bool {
	rootS, leafS := e.states[root], e.states[leaf]
	for c := 0; c < rootS.Instance().NumCharacters(); c++ {
		died := rootS.CharacterAlive[c] && !leafS.CharacterAlive[c]
		if died != rootS.CurrentComponent[rootS.CharacterVertex(c)] {
			return false
		}
	}
	// the levels strictly between root and leaf must have worked inside
	// root's component; the leaf itself has already moved on
	for l := root + 1; l < leaf; l++ {
		if !maskIncludes(rootS.CurrentComponent, e.states[l].CurrentComponent) {
			return false
		}
	}

	return true
}

// maskIncludes reports whether every vertex set in inner is also set in
// outer.
func maskIncludes(outer, inner []bool) bool {
	for v := range inner {
		if inner[v] && !outer[v] {
			return false
		}
	}

	return true
}
