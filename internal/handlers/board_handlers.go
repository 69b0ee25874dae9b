package handlers

import (
	"net/http"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"
	"taskBoard/internal/service"
	"time"

	"go.uber.org/zap"
)

type BoardHandler struct {
	BoardService BoardService
}

func NewBoardHandler(boardService BoardService) *BoardHandler {
	return &BoardHandler{
		BoardService: boardService,
	}
}

func (h *BoardHandler) GetBoards(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	boards, err := h.BoardService.ListBoards(r.Context(), p.ID)
	if err != nil {
		handleError(w, r, err, "get_boards")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("boards", boards))
}

func (h *BoardHandler) PostBoard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var request dto.BoardRequest
	if err := decodeJSON(w, r, &request); err != nil {
		handleError(w, r, err, "create_board")
		return
	}

	board, err := h.BoardService.CreateBoard(r.Context(), p.ID, request.Title)
	if err != nil {
		handleError(w, r, err, "create_board")
		return
	}

	logger.Info("HTTP_OUT: Доска создана",
		zap.String("board_id", board.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithMessage(w, http.StatusCreated, "Board created successfully", toPayload("board", board))
}

func (h *BoardHandler) GetBoardByID(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r, "id")
	if !ok {
		handleError(w, r, service.NewNotFound("Board not found"), "get_board")
		return
	}

	board, err := h.BoardService.GetBoard(r.Context(), p.ID, id)
	if err != nil {
		handleError(w, r, err, "get_board")
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("board", board))
}

func (h *BoardHandler) UpdateBoardByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")
	p, ok := principal(w, r)
	if !ok {
		return
	}

	var request dto.BoardRequest
	if err := decodeJSON(w, r, &request); err != nil {
		handleError(w, r, err, "update_board")
		return
	}

	id, ok := parseID(r, "id")
	if !ok {
		handleError(w, r, service.NewNotFound("Board not found"), "update_board")
		return
	}

	board, err := h.BoardService.UpdateBoard(r.Context(), p.ID, id, request.Title)
	if err != nil {
		handleError(w, r, err, "update_board")
		return
	}

	logger.Info("HTTP_OUT: Доска обновлена",
		zap.String("board_id", board.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithMessage(w, http.StatusOK, "Board updated successfully", toPayload("board", board))
}

func (h *BoardHandler) DeleteBoardByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")
	p, ok := principal(w, r)
	if !ok {
		return
	}

	id, ok := parseID(r, "id")
	if !ok {
		handleError(w, r, service.NewNotFound("Board not found"), "delete_board")
		return
	}

	if err := h.BoardService.DeleteBoard(r.Context(), p.ID, id); err != nil {
		handleError(w, r, err, "delete_board")
		return
	}

	logger.Info("HTTP_OUT: Доска удалена",
		zap.String("board_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithMessage(w, http.StatusOK, "Board deleted successfully")
}
