package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agora/contexts/meeting-governance/agenda-service/application/commands"
	"agora/contexts/meeting-governance/agenda-service/application/queries"
	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	httptransport "agora/contexts/meeting-governance/agenda-service/transport/http"
)

type Handler struct {
	Commands commands.AgendaUseCase
	Queries  queries.AgendaUseCase
	Logger   *slog.Logger
}

func (h Handler) CreateItemHandler(
	ctx context.Context,
	actorID int64,
	req httptransport.CreateAgendaItemRequest,
) (httptransport.AgendaItemResponse, error) {
	item, err := h.Commands.CreateItem(ctx, commands.CreateItemCommand{
		ActorID:           actorID,
		MeetingID:         req.MeetingID,
		OrderIndex:        req.OrderIndex,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Presenter:         req.Presenter,
		EstimatedDuration: req.EstimatedDuration,
		Status:            entities.ItemStatus(req.Status),
		IntroductionFile:  req.IntroductionFile,
		DecisionFile:      req.DecisionFile,
	})
	if err != nil {
		return httptransport.AgendaItemResponse{}, err
	}
	return mapItem(item), nil
}

func (h Handler) ListMeetingAgendaHandler(ctx context.Context, meetingID int64) (httptransport.AgendaListResponse, error) {
	items, err := h.Queries.ListMeetingAgenda(ctx, meetingID)
	if err != nil {
		return httptransport.AgendaListResponse{}, err
	}
	return httptransport.AgendaListResponse{Items: mapItems(items)}, nil
}

func (h Handler) UpdateItemStatusHandler(
	ctx context.Context,
	actorID int64,
	itemID int64,
	req httptransport.UpdateItemStatusRequest,
) (httptransport.AgendaItemResponse, error) {
	item, err := h.Commands.UpdateItemStatus(ctx, commands.UpdateItemStatusCommand{
		ActorID: actorID,
		ItemID:  itemID,
		Status:  entities.ItemStatus(req.Status),
	})
	if err != nil {
		return httptransport.AgendaItemResponse{}, err
	}
	return mapItem(item), nil
}

func (h Handler) ReorderAgendaHandler(
	ctx context.Context,
	actorID int64,
	meetingID int64,
	req httptransport.ReorderAgendaRequest,
) (httptransport.AgendaListResponse, error) {
	items, err := h.Commands.Reorder(ctx, commands.ReorderCommand{
		ActorID:   actorID,
		MeetingID: meetingID,
		ItemIDs:   req.ItemIDs,
	})
	if err != nil {
		return httptransport.AgendaListResponse{}, err
	}
	return httptransport.AgendaListResponse{Items: mapItems(items)}, nil
}

func (h Handler) AddCommentHandler(
	ctx context.Context,
	authorID int64,
	itemID int64,
	req httptransport.AddCommentRequest,
) (httptransport.AgendaCommentResponse, error) {
	comment, err := h.Commands.AddComment(ctx, commands.AddCommentCommand{
		ItemID:   itemID,
		AuthorID: authorID,
		Body:     req.Body,
	})
	if err != nil {
		return httptransport.AgendaCommentResponse{}, err
	}
	return mapComment(comment), nil
}

func (h Handler) ListCommentsHandler(ctx context.Context, itemID int64) (httptransport.CommentListResponse, error) {
	comments, err := h.Queries.ListItemComments(ctx, itemID)
	if err != nil {
		return httptransport.CommentListResponse{}, err
	}
	mapped := make([]httptransport.AgendaCommentResponse, 0, len(comments))
	for _, comment := range comments {
		mapped = append(mapped, mapComment(comment))
	}
	return httptransport.CommentListResponse{Comments: mapped}, nil
}

func mapItem(item entities.AgendaItem) httptransport.AgendaItemResponse {
	return httptransport.AgendaItemResponse{
		ItemID:            item.ItemID,
		MeetingID:         item.MeetingID,
		OrderIndex:        item.OrderIndex,
		Title:             item.Title,
		Description:       item.Description,
		Category:          item.Category,
		Presenter:         item.Presenter,
		EstimatedDuration: item.EstimatedDuration,
		Status:            string(item.Status),
		IntroductionFile:  item.IntroductionFile,
		DecisionFile:      item.DecisionFile,
		CreatedAt:         item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         item.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapItems(items []entities.AgendaItem) []httptransport.AgendaItemResponse {
	mapped := make([]httptransport.AgendaItemResponse, 0, len(items))
	for _, item := range items {
		mapped = append(mapped, mapItem(item))
	}
	return mapped
}

func mapComment(comment entities.AgendaComment) httptransport.AgendaCommentResponse {
	return httptransport.AgendaCommentResponse{
		CommentID: comment.CommentID,
		ItemID:    comment.ItemID,
		AuthorID:  comment.AuthorID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
