package grouping_test

import (
	"testing"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"

	"github.com/stretchr/testify/assert"
)

func teamIDs(teams []*domain.Team) []string {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestRelevantTeams(t *testing.T) {
	x := "X"
	y := "Y"
	teams := []*domain.Team{
		{ID: "no-category"},
		{ID: "same", TournamentCategoryID: &x},
		{ID: "other", TournamentCategoryID: &y, Category: "U18"},
		{ID: "legacy", TournamentCategoryID: &y, Category: domain.UnassignedCategory},
		nil,
	}

	t.Run("No category keeps everything", func(t *testing.T) {
		relevant := grouping.RelevantTeams(teams, "")
		assert.Equal(t, []string{"no-category", "same", "other", "legacy"}, teamIDs(relevant))
	})

	t.Run("Category filter excludes other categories", func(t *testing.T) {
		relevant := grouping.RelevantTeams(teams, "X")
		assert.Equal(t, []string{"no-category", "same", "legacy"}, teamIDs(relevant))
		assert.NotContains(t, teamIDs(relevant), "other")
	})
}

func TestPartitionTeams(t *testing.T) {
	empty := ""
	teams := []*domain.Team{
		team("t1", nil),
		team("t2", strPtr("Pool A")),
		team("t3", strPtr("Pool B")),
		team("t4", strPtr("Pool Z")),
		team("t5", &empty),
	}
	stages := []*domain.Stage{stage("s1", "Pool A"), stage("s2", "Pool B")}

	p := grouping.PartitionTeams(teams, stages)

	assert.Equal(t, []string{"t1", "t5"}, teamIDs(p.Unassigned))
	assert.Equal(t, []string{"t2"}, teamIDs(p.ByPool["Pool A"]))
	assert.Equal(t, []string{"t3"}, teamIDs(p.ByPool["Pool B"]))
	assert.Equal(t, []string{"t4"}, teamIDs(p.Orphaned))

	// Исходные данные не меняются.
	assert.Equal(t, "Pool Z", *teams[3].PoolNumber)
}
