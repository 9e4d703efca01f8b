package usecase_test

import (
	"io"

	"github.com/sirupsen/logrus"

	"grouping-service/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func silentLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func team(id, category string, pool *string) *domain.Team {
	var categoryID *string
	if category != "" {
		categoryID = strPtr(category)
	}
	return &domain.Team{
		ID:                   id,
		TournamentID:         "tour-1",
		Name:                 "Team " + id,
		OrganisationName:     "Org " + id,
		Category:             "U12",
		TournamentCategoryID: categoryID,
		PoolNumber:           pool,
		IsActive:             true,
	}
}

func poolStage(name string, order int) *domain.Stage {
	return &domain.Stage{
		ID:           "stage-" + name,
		TournamentID: "tour-1",
		Name:         name,
		StageType:    domain.StageTypePool,
		DisplayOrder: order,
	}
}
