package grouping_test

import (
	"testing"

	"grouping-service/internal/domain"
	"grouping-service/internal/grouping"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	stages := []*domain.Stage{stage("s1", "Pool A"), stage("s2", "Pool B")}

	testCases := []struct {
		name      string
		container string
		stages    []*domain.Stage
		kind      grouping.ResolutionKind
		value     *string
	}{
		{name: "Unassigned sentinel", container: grouping.UnassignedContainerID, stages: stages, kind: grouping.ResolvedUnassigned},
		{name: "Known stage name", container: "Pool B", stages: stages, kind: grouping.ResolvedPool, value: strPtr("Pool B")},
		{name: "Unknown stage name", container: "Pool C", stages: stages, kind: grouping.Unmatched},
		{name: "Stage id is not a container", container: "s1", stages: stages, kind: grouping.Unmatched},
		{name: "No stages", container: "Pool A", stages: nil, kind: grouping.Unmatched},
		{name: "Sentinel without stages", container: grouping.UnassignedContainerID, stages: nil, kind: grouping.ResolvedUnassigned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := grouping.Resolve(tc.container, tc.stages)

			assert.Equal(t, tc.kind, res.Kind)
			assert.Equal(t, tc.value, res.Value())
			assert.Equal(t, tc.kind != grouping.Unmatched, res.Resolved())
		})
	}
}

func TestResolve_DuplicateNamesFirstWins(t *testing.T) {
	stages := []*domain.Stage{stage("s1", "Pool A"), stage("s2", "Pool A")}

	res := grouping.Resolve("Pool A", stages)

	assert.Equal(t, grouping.ResolvedPool, res.Kind)
	assert.Equal(t, "Pool A", res.PoolName)
}
