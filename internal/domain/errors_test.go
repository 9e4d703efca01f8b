package domain_test

import (
	"fmt"
	"testing"

	"grouping-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPError_WrappedError(t *testing.T) {
	err := fmt.Errorf("assign pool: %w", domain.ErrStageNotFound)

	httpErr, ok := domain.ToHTTPError(err)

	assert.True(t, ok)
	assert.Equal(t, "STAGE_NOT_FOUND", httpErr.Code)
}

func TestToHTTPError_Unknown(t *testing.T) {
	_, ok := domain.ToHTTPError(fmt.Errorf("boom"))

	assert.False(t, ok)
}

func TestTeam_IsUnassigned(t *testing.T) {
	empty := ""
	pool := "Pool A"

	testCases := []struct {
		name     string
		pool     *string
		expected bool
	}{
		{name: "nil pool", pool: nil, expected: true},
		{name: "empty pool", pool: &empty, expected: true},
		{name: "assigned", pool: &pool, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			team := &domain.Team{ID: "t1", PoolNumber: tc.pool}
			assert.Equal(t, tc.expected, team.IsUnassigned())
		})
	}
}

func TestTeam_StageScope(t *testing.T) {
	category := "cat-y"

	testCases := []struct {
		name     string
		team     domain.Team
		expected string
	}{
		{name: "category team", team: domain.Team{Category: "U12", TournamentCategoryID: &category}, expected: "cat-y"},
		{name: "no category", team: domain.Team{Category: "U12"}, expected: ""},
		{name: "legacy label", team: domain.Team{Category: domain.UnassignedCategory, TournamentCategoryID: &category}, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.team.StageScope())
		})
	}
}
