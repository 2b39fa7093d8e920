package vault

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arcanum-game/arcanum/internal/dependencies/mocks"
	"github.com/arcanum-game/arcanum/internal/model"
	"github.com/arcanum-game/arcanum/internal/storage/memory"
	"github.com/arcanum-game/arcanum/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, clk, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestCreateVaultSucceeds() {
	v, err := s.service.CreateVault(s.ctx, []model.ItemID{3, 7})
	s.Require().NoError(err)

	s.Equal(model.VaultID(1), v.ID)
	s.Equal([]model.ItemID{3, 7}, v.ItemIDs)
	s.False(v.Drained)
}

func (s *ServiceSuite) TestCreateVaultCopiesItemSlice() {
	items := []model.ItemID{1, 2}
	v, err := s.service.CreateVault(s.ctx, items)
	s.Require().NoError(err)

	items[0] = 99
	s.Equal([]model.ItemID{1, 2}, v.ItemIDs)
}

func (s *ServiceSuite) TestCreateVaultRejectsEmpty() {
	_, err := s.service.CreateVault(s.ctx, nil)
	s.ErrorIs(err, ErrEmptyVault)
}

func (s *ServiceSuite) TestGetVaultNotFound() {
	_, err := s.service.GetVault(s.ctx, 99)
	s.ErrorIs(err, model.ErrVaultNotFound)
}

func (s *ServiceSuite) TestDrainEmptiesAndMarksVault() {
	v, err := s.service.CreateVault(s.ctx, []model.ItemID{1, 2})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Drain(s.ctx, v))

	got, err := s.service.GetVault(s.ctx, v.ID)
	s.Require().NoError(err)
	s.True(got.Drained)
	s.Empty(got.ItemIDs)
}

func (s *ServiceSuite) TestListVaults() {
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateVault(s.ctx, []model.ItemID{model.ItemID(i + 1)})
		s.Require().NoError(err)
	}

	ids, err := s.service.ListVaults(s.ctx, 0)
	s.Require().NoError(err)
	s.Equal([]model.VaultID{1, 2, 3}, ids)

	ids, err = s.service.ListVaults(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(ids, 2)
}
