package grouping_test

import "grouping-service/internal/domain"

type assignCall struct {
	teamID   string
	poolName *string
}

type recordingAssigner struct {
	calls []assignCall
}

func (r *recordingAssigner) Assign(teamID string, poolName *string) {
	r.calls = append(r.calls, assignCall{teamID: teamID, poolName: poolName})
}

func strPtr(s string) *string {
	return &s
}

func team(id string, pool *string) *domain.Team {
	return &domain.Team{ID: id, Name: "Team " + id, PoolNumber: pool}
}

func stage(id, name string) *domain.Stage {
	return &domain.Stage{ID: id, Name: name}
}
