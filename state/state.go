// Package state holds the wizard data shared between components and the
// background commit task.
package state

import (
	"strings"
	"sync"

	"github.com/BrianJOC/coco/commitmsg"
	"github.com/BrianJOC/coco/config"
)

// StepStatus marks whether a wizard step holds acceptable input.
type StepStatus int

const (
	Invalid StepStatus = iota
	Valid
)

func (s StepStatus) String() string {
	if s == Valid {
		return "valid"
	}
	return "invalid"
}

// CommitStepKey is the validity key of the commit step.
const CommitStepKey = "commit"

// CommitRecord describes a commit created by git.
type CommitRecord struct {
	Hash        string
	Author      string
	AuthorEmail string
	Date        string
}

// Draft is a point-in-time copy of the message being built.
type Draft struct {
	Kind       *config.CommitKind
	Scope      string
	Summary    string
	SummarySet bool
	Body       []string
	BodySet    bool
	Footer     []string
	FooterSet  bool
	Breaking   bool
	Result     *CommitRecord
}

// AppState is shared by pointer; every accessor holds the lock only for the
// duration of the read or write.
type AppState struct {
	mu     sync.Mutex
	cfg    *config.Config
	status map[string]StepStatus
	draft  Draft
}

// New creates state bound to cfg, falling back to defaults when nil.
func New(cfg *config.Config) *AppState {
	if cfg == nil {
		cfg = config.Default()
	}
	return &AppState{
		cfg:    cfg,
		status: make(map[string]StepStatus),
	}
}

// Config returns the loaded configuration.
func (s *AppState) Config() *config.Config {
	if s == nil {
		return config.Default()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *AppState) SetKind(kind *config.CommitKind) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == nil {
		s.draft.Kind = nil
		return
	}
	copied := *kind
	s.draft.Kind = &copied
}

func (s *AppState) SetScope(scope string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Scope = scope
}

func (s *AppState) SetSummary(summary string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Summary = summary
	s.draft.SummarySet = true
}

func (s *AppState) SetBody(lines []string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Body = append([]string{}, lines...)
	s.draft.BodySet = true
}

func (s *AppState) SetFooter(lines []string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Footer = append([]string{}, lines...)
	s.draft.FooterSet = true
}

func (s *AppState) SetBreaking(breaking bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Breaking = breaking
}

// SetStepStatus records validity for a step key.
func (s *AppState) SetStepStatus(key string, status StepStatus) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[key] = status
}

// StepStatus returns the recorded validity, Invalid for unknown keys.
func (s *AppState) StepStatus(key string) StepStatus {
	if s == nil {
		return Invalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[key]
}

// CommitFieldsComplete reports a non-empty summary with body and footer present.
func (s *AppState) CommitFieldsComplete() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commitCompleteLocked()
}

// Draft returns a deep copy of the current draft.
func (s *AppState) Draft() Draft {
	if s == nil {
		return Draft{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked()
}

// Message assembles the commit message from the current draft.
func (s *AppState) Message() commitmsg.Message {
	if s == nil {
		return commitmsg.Message{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildMessage(s.cfg, s.draftLocked())
}

// SetCommitResult stores the created commit.
func (s *AppState) SetCommitResult(record CommitRecord) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Result = &record
}

// CommitResult returns the stored commit and whether one exists.
func (s *AppState) CommitResult() (CommitRecord, bool) {
	if s == nil {
		return CommitRecord{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.Result == nil {
		return CommitRecord{}, false
	}
	return *s.draft.Result, true
}

// BuildMessage assembles a message from a draft using cfg's emoji setting.
func BuildMessage(cfg *config.Config, draft Draft) commitmsg.Message {
	return buildMessage(cfg, draft)
}

func buildMessage(cfg *config.Config, draft Draft) commitmsg.Message {
	msg := commitmsg.Message{
		Scope:    draft.Scope,
		Summary:  strings.TrimSpace(draft.Summary),
		Body:     draft.Body,
		Footer:   draft.Footer,
		Breaking: draft.Breaking,
	}
	if draft.Kind != nil {
		msg.Kind = draft.Kind.Name
		if cfg == nil || cfg.UseEmoji {
			msg.Emoji = draft.Kind.Emoji
		}
	}
	return msg
}

func (s *AppState) draftLocked() Draft {
	d := s.draft
	if s.draft.Kind != nil {
		kind := *s.draft.Kind
		d.Kind = &kind
	}
	d.Body = append([]string(nil), s.draft.Body...)
	d.Footer = append([]string(nil), s.draft.Footer...)
	if s.draft.Result != nil {
		record := *s.draft.Result
		d.Result = &record
	}
	return d
}

func (s *AppState) commitCompleteLocked() bool {
	return strings.TrimSpace(s.draft.Summary) != "" && s.draft.BodySet && s.draft.FooterSet
}
