package handler

import (
	"grouping-service/api"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*TeamHandler
	*StageHandler
	*GroupingHandler
	*SessionHandler
}

func NewAPIHandler(
	groupingService GroupingService,
	assignmentService AssignmentService,
	sessionService EditorSessionService,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		TeamHandler:     NewTeamHandler(groupingService, assignmentService, logger),
		StageHandler:    NewStageHandler(groupingService, logger),
		GroupingHandler: NewGroupingHandler(groupingService, assignmentService, logger),
		SessionHandler:  NewSessionHandler(sessionService, logger),
	}
}
