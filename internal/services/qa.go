// Package services holds the application services behind the HTTP boundary.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/answer"
	"github.com/rs82696/Memeber-qa-Service/internal/corpus"
	"github.com/rs82696/Memeber-qa-Service/internal/feed"
	"github.com/rs82696/Memeber-qa-Service/internal/model"
	"github.com/rs82696/Memeber-qa-Service/internal/retrieval"
)

// NoSignalReply is returned when retrieval finds no related messages at all;
// the answer provider is not called in that case.
const NoSignalReply = "I couldn't find any messages related to that question."

// QAService answers member questions: retrieval over the current corpus
// snapshot, then answer synthesis by the provider. It also owns corpus
// reloads.
type QAService struct {
	source   feed.Source
	provider answer.Provider
	holder   *corpus.Holder
	selector *retrieval.Selector
	log      zerolog.Logger

	answerTimeout time.Duration

	// serializes reloads; readers are never blocked
	reloadMu sync.Mutex
}

// NewQAService wires the service. answerTimeout bounds each generation call;
// zero means the caller's context is the only bound.
func NewQAService(source feed.Source, provider answer.Provider, holder *corpus.Holder,
	selector *retrieval.Selector, answerTimeout time.Duration, log zerolog.Logger) *QAService {
	return &QAService{
		source:        source,
		provider:      provider,
		holder:        holder,
		selector:      selector,
		answerTimeout: answerTimeout,
		log:           log,
	}
}

// Ask answers one question against the current snapshot. It returns
// model.ErrCorpusUnavailable before the first successful load, NoSignalReply
// (no provider call) when retrieval comes back empty, and wraps provider
// failures in model.ErrAnswerUnavailable.
func (s *QAService) Ask(ctx context.Context, question string) (string, error) {
	snap := s.holder.Load()
	if snap == nil {
		return "", model.ErrCorpusUnavailable
	}

	sel := s.selector.Select(question, snap)
	evt := s.log.Debug().Int("context_items", len(sel.Items)).Bool("fallback", sel.Fallback)
	if sel.Member != nil {
		evt = evt.Str("member", sel.Member.FullName)
	}
	evt.Msg("selected context")

	if len(sel.Items) == 0 {
		return NoSignalReply, nil
	}

	callCtx := ctx
	if s.answerTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.answerTimeout)
		defer cancel()
	}

	reply, err := s.provider.Answer(callCtx, question, sel.Items)
	if err != nil {
		if errors.Is(err, model.ErrAnswerUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", model.ErrAnswerUnavailable, err)
	}
	return reply, nil
}

// Reload fetches the feed and swaps in a freshly built snapshot. Reloads are
// serialized; requests keep reading the previous snapshot until the swap,
// and a failed reload leaves it in place untouched.
func (s *QAService) Reload(ctx context.Context) (model.CorpusInfo, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	msgs, err := s.source.Fetch(ctx)
	if err != nil {
		return model.CorpusInfo{}, err
	}

	snap := corpus.Build(msgs, time.Now().UTC())
	s.holder.Swap(snap)

	info := snap.Info()
	s.log.Info().Int("messages", info.Messages).Int("members", info.Members).Msg("corpus reloaded")
	return info, nil
}

// Status reports the currently served snapshot, or ErrCorpusUnavailable when
// none has been loaded yet.
func (s *QAService) Status() (model.CorpusInfo, error) {
	snap := s.holder.Load()
	if snap == nil {
		return model.CorpusInfo{}, model.ErrCorpusUnavailable
	}
	return snap.Info(), nil
}
