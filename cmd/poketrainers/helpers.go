package main

import (
	"fmt"

	"poketrainers/internal/account"
	"poketrainers/internal/dex"
	"poketrainers/internal/evolution"
	"poketrainers/internal/format"
	"poketrainers/internal/logging"
	"poketrainers/internal/pokeapi"
	"poketrainers/internal/store"
)

func newAPI() (*pokeapi.Client, error) {
	return pokeapi.New(cfg.APIBase,
		pokeapi.WithTimeout(cfg.Timeout.Std()),
		pokeapi.WithLogger(logging.New("pokeapi")),
	)
}

func newResolver(api *pokeapi.Client) *evolution.Resolver {
	return evolution.NewResolver(pokeapi.NewSource(api), evolution.WithLogger(logging.New("evolution")))
}

func newDex(api *pokeapi.Client) *dex.Dex {
	return dex.New(api, dex.WithLogger(logging.New("dex")))
}

// openAccounts opens the configured database. The caller closes the store.
func openAccounts() (*account.Service, store.Store, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc := account.NewService(st,
		account.WithCost(cfg.BcryptCost),
		account.WithLogger(logging.New("account")),
	)
	return svc, st, nil
}

func tableMode(markdown bool) format.Mode {
	if markdown {
		return format.Markdown
	}
	return format.ASCII
}
