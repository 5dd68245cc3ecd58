package repositories_test

import (
	"testing"

	"marche/internal/models"
	"marche/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGORMReviewRepository_Create_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMReviewRepository(db)

	require.NoError(t, repo.Create(&models.Review{ShopperID: "c1", SellerID: "v1", Rating: 4}))

	// The unique index rejects the second insert with ErrDuplicate, even when
	// both writes arrive without an intervening read.
	err := repo.Create(&models.Review{ShopperID: "c1", SellerID: "v1", Rating: 5})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	// A different seller is a different pair.
	require.NoError(t, repo.Create(&models.Review{ShopperID: "c1", SellerID: "v2", Rating: 3}))

	reviews, err := repo.ListBySeller("v1")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
}
