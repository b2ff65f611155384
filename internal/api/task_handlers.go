package api

import (
	"cmp"
	"log/slog"
	"mime/multipart"
	"net/http"
	"slices"
	"strconv"
	"strings"

	errorvalues "github.com/limbo/discipline-tracker/internal/error_values"
	"github.com/limbo/discipline-tracker/internal/service"
	"github.com/limbo/discipline-tracker/pkg/entity"
	"github.com/limbo/discipline-tracker/pkg/httputil"
)

var uploadFieldPrefixes = []string{"new_file_", "full_bottle_", "empty_bottle_"}

type UpdateTaskResponse struct {
	Message string `json:"message"`
	service.UpdateTaskResult
}

func (s *Server) TaskCatalog(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"tasks": entity.Tasks})
}

func (s *Server) DailyTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("daily tasks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date is required", nil)
		return
	}
	target, err := targetUser(r, uid)
	if err != nil {
		writeServiceError(w, logger, "daily tasks", err)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	records, err := s.taskService.GetDaily(ctx, target, date)
	if err != nil {
		writeServiceError(w, logger, "daily tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"tasks": records})
}

func (s *Server) MonthTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("month tasks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, yearErr := strconv.Atoi(r.URL.Query().Get("year"))
	month, monthErr := strconv.Atoi(r.URL.Query().Get("month"))
	if yearErr != nil || monthErr != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "year and month are required", nil)
		return
	}
	target, err := targetUser(r, uid)
	if err != nil {
		writeServiceError(w, logger, "month tasks", err)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	days, err := s.taskService.GetMonth(ctx, target, year, month)
	if err != nil {
		writeServiceError(w, logger, "month tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"taskData": days})
}

// UpdateTask godoc
// @Summary Create or update one task record of the caller
// @Tags tasks
// @Accept multipart/form-data
// @Produce json
// @Param taskId formData string true "task kind"
// @Param date formData string true "YYYY-MM-DD"
// @Param completed formData bool false "completion flag"
// @Param action formData string false "updateTask, updateCompletion or deleteImage"
// @Success 200 {object} UpdateTaskResponse
// @Router /tasks/update [post]
func (s *Server) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("task update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	if err = r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Error("task update error: invalid form", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid multipart form", nil)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := service.UpdateTaskRequest{
		TaskID:    r.FormValue("taskId"),
		Date:      r.FormValue("date"),
		Action:    service.TaskAction(r.FormValue("action")),
		Completed: r.FormValue("completed") == "true",
		TextInput: r.FormValue("textInput"),
		Notes:     r.FormValue("notes"),
	}
	if req.Action == "" {
		req.Action = service.ActionUpdateTask
	}
	if raw := r.FormValue("removeImageIndex"); raw != "" {
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 0 {
			writeServiceError(w, logger, "task update", errorvalues.ErrImageIndex)
			return
		}
		req.RemoveImageIndex = idx
	}
	uploads, closeAll, err := collectUploads(r.MultipartForm)
	defer closeAll()
	if err != nil {
		logger.Error("task update error: opening uploaded file", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid uploaded file", nil)
		return
	}
	req.Uploads = uploads

	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	res, err := s.taskService.UpdateTask(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "task update", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, UpdateTaskResponse{
		Message:          "Task updated successfully",
		UpdateTaskResult: *res,
	})
	logger.Info("task updated",
		slog.String("task", req.TaskID),
		slog.String("action", string(req.Action)),
		slog.Int("files", res.FilesCount),
	)
}

// collectUploads opens every non-empty file sent under a known field prefix,
// ordered by field name and numeric suffix.
func collectUploads(form *multipart.Form) ([]service.Upload, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	type field struct {
		name   string
		prefix string
		index  int
		header *multipart.FileHeader
	}
	fields := make([]field, 0, len(form.File))
	for name, headers := range form.File {
		for _, prefix := range uploadFieldPrefixes {
			if !strings.HasPrefix(name, prefix) || len(headers) == 0 || headers[0].Size == 0 {
				continue
			}
			idx, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
			if err != nil {
				continue
			}
			fields = append(fields, field{name: name, prefix: prefix, index: idx, header: headers[0]})
		}
	}
	slices.SortFunc(fields, func(a, b field) int {
		return cmp.Or(strings.Compare(a.prefix, b.prefix), cmp.Compare(a.index, b.index))
	})
	uploads := make([]service.Upload, 0, len(fields))
	for _, f := range fields {
		file, err := f.header.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, file)
		uploads = append(uploads, service.Upload{Field: f.name, Content: file})
	}
	return uploads, closeAll, nil
}
