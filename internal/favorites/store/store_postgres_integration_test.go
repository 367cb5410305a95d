//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	catalogstore "holocron/internal/catalog/store"
	"holocron/pkg/testutil/containers"
)

func TestPostgresFavoriteStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, &FavoriteStoreSuite{setup: func(t *testing.T) (favoriteStore, catalogWriter) {
		pg := containers.GetManager().GetPostgres(t)
		if err := pg.TruncateAll(context.Background()); err != nil {
			t.Fatalf("truncate: %v", err)
		}
		return NewSQL(pg.DB), catalogstore.NewSQL(pg.DB)
	}})
}
