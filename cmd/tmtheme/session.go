package main

import (
	"github.com/alexisbeaulieu97/tmtheme/internal/dom"
	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/preference"
	"github.com/alexisbeaulieu97/tmtheme/internal/projector"
	"github.com/alexisbeaulieu97/tmtheme/internal/provider"
	"github.com/alexisbeaulieu97/tmtheme/internal/storage"
)

// session is one document driven by a provider.
type session struct {
	doc      *dom.Document
	orch     *orchestrator.Orchestrator
	provider *provider.Provider
}

func (a *app) newSession(store storage.Storage, pref preference.Source) (*session, error) {
	doc := dom.NewDocument()

	orch, err := orchestrator.New(orchestrator.Options{
		Target:    doc,
		Projector: projector.New(projector.Options{Environment: a.environment(), Logger: a.log}),
		Brands:    a.brands,
		Logger:    a.log,
	})
	if err != nil {
		return nil, err
	}

	prov, err := provider.New(provider.Options{
		Orchestrator: orch,
		Storage:      store,
		Preference:   pref,
		Logger:       a.log,
	})
	if err != nil {
		return nil, err
	}

	return &session{doc: doc, orch: orch, provider: prov}, nil
}

func (a *app) preferenceSource() preference.Source {
	if a.cfg.Preference.File == "" {
		return nil
	}
	return preference.NewFile(a.cfg.Preference.File, a.log)
}
