package repositories

import (
	"context"
	"fmt"

	"github.com/thong1990/t3turbo-sub000/trading/database/models"
	"github.com/thong1990/t3turbo-sub000/trading/services"
	"github.com/uptrace/bun"
)

// InventoryRepository reads per-user held/tradeable quantities, wishlists and
// the cross-user demand/supply relations. Joined rows are normalized to flat
// structs before they leave the gateway so the matching engine never handles
// join-shape ambiguity.
type InventoryRepository interface {
	GetTradeableCards(ctx context.Context, userID string) ([]*models.InventoryEntry, error)
	GetWishlist(ctx context.Context, userID string) ([]*models.InventoryEntry, error)
	GetUsersWantingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardInterest, error)
	GetUsersSupplyingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardSupply, error)
	GetUserNames(ctx context.Context, userIDs []string) (map[string]string, error)
}

type inventoryRepository struct {
	db     *bun.DB
	images *services.CardImageService
}

func NewInventoryRepository(db *bun.DB, images *services.CardImageService) InventoryRepository {
	return &inventoryRepository{db: db, images: images}
}

func (r *inventoryRepository) GetTradeableCards(ctx context.Context, userID string) ([]*models.InventoryEntry, error) {
	var entries []*models.InventoryEntry
	err := r.db.NewSelect().
		Model(&entries).
		Relation("Card").
		Where("ie.user_id = ? AND ie.quantity_tradeable > 0", userID).
		Order("ie.card_id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get tradeable cards: %w", err)
	}
	r.resolveImages(entries)
	return entries, nil
}

func (r *inventoryRepository) GetWishlist(ctx context.Context, userID string) ([]*models.InventoryEntry, error) {
	var entries []*models.InventoryEntry
	err := r.db.NewSelect().
		Model(&entries).
		Relation("Card").
		Where("ie.user_id = ? AND ie.quantity_desired > 0", userID).
		Order("ie.card_id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}
	r.resolveImages(entries)
	return entries, nil
}

func (r *inventoryRepository) GetUsersWantingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardInterest, error) {
	var rows []models.CardInterest
	err := r.db.NewSelect().
		Model((*models.InventoryEntry)(nil)).
		Column("user_id", "card_id").
		Where("card_id IN (?)", bun.In(cardIDs)).
		Where("quantity_desired > 0").
		Where("user_id != ?", excludeUserID).
		Order("user_id ASC", "card_id ASC").
		Scan(ctx, &rows)

	if err != nil {
		return nil, fmt.Errorf("failed to get users wanting cards: %w", err)
	}
	return rows, nil
}

func (r *inventoryRepository) GetUsersSupplyingCards(ctx context.Context, cardIDs []int64, excludeUserID string) ([]models.CardSupply, error) {
	var entries []*models.InventoryEntry
	err := r.db.NewSelect().
		Model(&entries).
		Relation("Card").
		Where("ie.card_id IN (?)", bun.In(cardIDs)).
		Where("ie.quantity_tradeable > 0").
		Where("ie.user_id != ?", excludeUserID).
		Order("ie.user_id ASC", "ie.card_id ASC").
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get users supplying cards: %w", err)
	}

	// Flatten the one-to-one join; rows without a catalog card are dropped.
	supplies := make([]models.CardSupply, 0, len(entries))
	for _, entry := range entries {
		if entry.Card == nil {
			continue
		}
		r.resolveImage(entry.Card)
		supplies = append(supplies, models.CardSupply{
			UserID: entry.UserID,
			CardID: entry.CardID,
			Card:   entry.Card,
		})
	}
	return supplies, nil
}

func (r *inventoryRepository) GetUserNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}

	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Where("id IN (?)", bun.In(userIDs)).
		Scan(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get user names: %w", err)
	}

	names := make(map[string]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name()
	}
	return names, nil
}

func (r *inventoryRepository) resolveImages(entries []*models.InventoryEntry) {
	for _, entry := range entries {
		if entry.Card != nil {
			r.resolveImage(entry.Card)
		}
	}
}

func (r *inventoryRepository) resolveImage(card *models.Card) {
	if r.images == nil || card.ImageURL != "" {
		return
	}
	card.ImageURL = r.images.CardImageURL(card.PackID, card.ID)
}
