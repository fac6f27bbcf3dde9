package ui

import (
	"sync"
	"time"
)

// Animation is the class applied to the animation box. The three variants
// are mutually exclusive; AnimNone means no class is applied.
type Animation int

const (
	AnimNone Animation = iota
	AnimBounce
	AnimSpin
	AnimFade
)

// ParseAnimation maps a raw name to an Animation. ok is false for names
// outside the known set.
func ParseAnimation(s string) (Animation, bool) {
	switch s {
	case "bounce":
		return AnimBounce, true
	case "spin":
		return AnimSpin, true
	case "fade":
		return AnimFade, true
	case "", "none":
		return AnimNone, true
	default:
		return AnimNone, false
	}
}

func (a Animation) String() string {
	switch a {
	case AnimBounce:
		return "bounce"
	case AnimSpin:
		return "spin"
	case AnimFade:
		return "fade"
	default:
		return "none"
	}
}

// PanelView is the rendered state of one demo's result panel.
type PanelView struct {
	Visible bool   `json:"visible"`
	HTML    string `json:"html"`
	IsError bool   `json:"is_error"`
	// Generation increases on every render so clients re-trigger the CSS
	// transition even when the markup is byte-identical to the last run.
	Generation uint64 `json:"generation"`
}

// Snapshot is the pure projection of the whole UI state; rendering reads
// this and nothing else.
type Snapshot struct {
	Panels       map[string]PanelView `json:"panels"`
	Animation    string               `json:"animation"`
	ModalOpen    bool                 `json:"modal_open"`
	ScrollLocked bool                 `json:"scroll_locked"`
	Flipped      bool                 `json:"flipped"`
	Loading      bool                 `json:"loading"`
	LoadingLabel string               `json:"loading_label"`
}

// Options configures timed behavior. A zero HideDelay disables panel
// auto-hide; a zero LoadingInterval falls back to 500ms.
type Options struct {
	HideDelay       time.Duration
	LoadingInterval time.Duration
}

// State holds all UI visibility/animation state explicitly. Every mutation
// goes through an operation on State; the browser-side classes are a
// projection of Snapshot, never the source of truth.
type State struct {
	mu     sync.Mutex
	panels map[string]*PanelView

	anim         Animation
	modalOpen    bool
	scrollLocked bool
	flipped      bool

	loader *loader
	opts   Options
}

func NewState(opts Options) *State {
	if opts.LoadingInterval <= 0 {
		opts.LoadingInterval = 500 * time.Millisecond
	}
	return &State{panels: make(map[string]*PanelView), opts: opts}
}

// ShowResult renders html into the named demo's result panel and bumps its
// generation. When a hide delay is configured the panel auto-hides after it,
// unless a newer render has landed in the meantime.
func (s *State) ShowResult(demo, html string, isError bool) uint64 {
	s.mu.Lock()
	p, ok := s.panels[demo]
	if !ok {
		p = &PanelView{}
		s.panels[demo] = p
	}
	p.Visible = true
	p.HTML = html
	p.IsError = isError
	p.Generation++
	gen := p.Generation
	s.mu.Unlock()

	if s.opts.HideDelay > 0 {
		time.AfterFunc(s.opts.HideDelay, func() { s.hidePanel(demo, gen) })
	}
	return gen
}

func (s *State) hidePanel(demo string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.panels[demo]; ok && p.Generation == gen {
		p.Visible = false
	}
}

// TriggerAnimation applies one of the animation variants to the box.
func (s *State) TriggerAnimation(a Animation) {
	s.mu.Lock()
	s.anim = a
	s.mu.Unlock()
}

// ResetAnimation clears the animation box back to no class.
func (s *State) ResetAnimation() {
	s.mu.Lock()
	s.anim = AnimNone
	s.mu.Unlock()
}

// OpenModal shows the modal and locks page scroll.
func (s *State) OpenModal() {
	s.mu.Lock()
	s.modalOpen = true
	s.scrollLocked = true
	s.mu.Unlock()
}

// CloseModal hides the modal and releases the scroll lock. Closing a modal
// that is not open is a silent no-op; closed is reported so callers can
// skip logging.
func (s *State) CloseModal() (closed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modalOpen {
		return false
	}
	s.modalOpen = false
	s.scrollLocked = false
	return true
}

// ToggleFlip flips the card and returns the new face-up state.
func (s *State) ToggleFlip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flipped = !s.flipped
	return s.flipped
}

// Snapshot returns a copy of the current UI state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	panels := make(map[string]PanelView, len(s.panels))
	for name, p := range s.panels {
		panels[name] = *p
	}
	snap := Snapshot{
		Panels:       panels,
		Animation:    s.anim.String(),
		ModalOpen:    s.modalOpen,
		ScrollLocked: s.scrollLocked,
		Flipped:      s.flipped,
		LoadingLabel: loadingBase,
	}
	if s.loader != nil {
		snap.Loading = true
		snap.LoadingLabel = s.loader.label()
	}
	return snap
}

// Close stops any running loader. Safe to call more than once.
func (s *State) Close() { s.StopLoading() }
