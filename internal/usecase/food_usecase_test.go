package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bereketsol/Reelbite/internal/domain/entity"
	"github.com/bereketsol/Reelbite/internal/usecase"
)

type memPartnerRepo struct {
	partners map[string]*entity.FoodPartner
}

func newMemPartnerRepo(partners ...*entity.FoodPartner) *memPartnerRepo {
	r := &memPartnerRepo{partners: map[string]*entity.FoodPartner{}}
	for _, p := range partners {
		r.partners[p.ID] = p
	}
	return r
}

func (r *memPartnerRepo) CreatePartner(ctx context.Context, partner *entity.FoodPartner) error {
	r.partners[partner.ID] = partner
	return nil
}

func (r *memPartnerRepo) GetPartnerByID(ctx context.Context, partnerID string) (*entity.FoodPartner, error) {
	p, ok := r.partners[partnerID]
	if !ok {
		return nil, entity.ErrPartnerNotFound
	}
	return p, nil
}

func (r *memPartnerRepo) GetPartnerByEmail(ctx context.Context, email string) (*entity.FoodPartner, error) {
	for _, p := range r.partners {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, entity.ErrPartnerNotFound
}

type fakeBlobStore struct {
	failUpload   bool
	lastFileName string
	uploads      int
}

func (s *fakeBlobStore) Upload(ctx context.Context, data []byte, fileName string) (string, error) {
	if s.failUpload {
		return "", errors.New("blob store unavailable")
	}
	s.uploads++
	s.lastFileName = fileName
	return "https://cdn.example.com/videos/" + fileName, nil
}

func newFoodFixture(blob *fakeBlobStore) (*usecase.FoodUsecase, *memFoodRepo) {
	foodRepo := newMemFoodRepo()
	partnerRepo := newMemPartnerRepo(&entity.FoodPartner{ID: "partner-1", BusinessName: "Test Kitchen"})
	uc := usecase.NewFoodUsecase(foodRepo, partnerRepo, blob, &seqUUIDGen{}, noopLogger{})
	return uc, foodRepo
}

func TestCreateFood(t *testing.T) {
	blob := &fakeBlobStore{}
	uc, foodRepo := newFoodFixture(blob)

	food, err := uc.CreateFood(context.Background(), "partner-1", "Doro Wat", "Slow-cooked chicken stew", []byte("video-bytes"), "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "partner-1", food.FoodPartnerID)
	assert.True(t, strings.HasSuffix(blob.lastFileName, ".mp4"))
	assert.Equal(t, "https://cdn.example.com/videos/"+blob.lastFileName, food.VideoURL)

	stored, err := foodRepo.GetFoodByID(context.Background(), food.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stored.LikeCount)
	assert.Equal(t, int64(0), stored.SaveCount)
}

func TestCreateFoodUploadFailureAbortsCreation(t *testing.T) {
	blob := &fakeBlobStore{failUpload: true}
	uc, foodRepo := newFoodFixture(blob)

	_, err := uc.CreateFood(context.Background(), "partner-1", "Doro Wat", "stew", []byte("video-bytes"), "video/mp4")
	assert.Error(t, err)

	foods, listErr := foodRepo.ListFoods(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, foods, "no food record may be written when the upload fails")
}

func TestCreateFoodMissingFields(t *testing.T) {
	uc, _ := newFoodFixture(&fakeBlobStore{})

	_, err := uc.CreateFood(context.Background(), "partner-1", "", "stew", []byte("x"), "video/mp4")
	assert.ErrorIs(t, err, usecase.ErrMissingFoodFields)

	_, err = uc.CreateFood(context.Background(), "partner-1", "Doro Wat", "stew", nil, "video/mp4")
	assert.ErrorIs(t, err, usecase.ErrMissingVideo)
}

func TestCreateFoodUnknownPartner(t *testing.T) {
	blob := &fakeBlobStore{}
	uc, _ := newFoodFixture(blob)

	_, err := uc.CreateFood(context.Background(), "no-such-partner", "Doro Wat", "stew", []byte("x"), "video/mp4")
	assert.ErrorIs(t, err, entity.ErrPartnerNotFound)
	assert.Equal(t, 0, blob.uploads, "unknown partner must not trigger an upload")
}

func TestGetPartnerProfile(t *testing.T) {
	blob := &fakeBlobStore{}
	uc, _ := newFoodFixture(blob)

	_, err := uc.CreateFood(context.Background(), "partner-1", "Doro Wat", "stew", []byte("x"), "video/mp4")
	require.NoError(t, err)

	partner, foods, err := uc.GetPartnerProfile(context.Background(), "partner-1")
	require.NoError(t, err)
	assert.Equal(t, "Test Kitchen", partner.BusinessName)
	require.Len(t, foods, 1)
	assert.Equal(t, "Doro Wat", foods[0].Name)

	_, _, err = uc.GetPartnerProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrPartnerNotFound)
}
