package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/kezya-clinic/internal/domain/appointment"
	"github.com/BruksfildServices01/kezya-clinic/internal/httperr"
	"github.com/BruksfildServices01/kezya-clinic/internal/models"
)

var kanbanStatuses = map[string]bool{"todo": true, "doing": true, "done": true}

type KanbanHandler struct {
	db  *gorm.DB
	ids domain.IDGenerator
}

func NewKanbanHandler(db *gorm.DB, ids domain.IDGenerator) *KanbanHandler {
	return &KanbanHandler{db: db, ids: ids}
}

type KanbanRequest struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

func (h *KanbanHandler) List(c *gin.Context) {
	var tasks []models.KanbanTask
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tasks", "Erro ao listar tarefas.")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *KanbanHandler) Create(c *gin.Context) {
	var req KanbanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		httperr.BadRequest(c, "missing_fields", "Informe o título da tarefa.")
		return
	}

	status := "todo"
	if req.Status != nil {
		status = strings.ToLower(strings.TrimSpace(*req.Status))
	}
	if !kanbanStatuses[status] {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	task := models.KanbanTask{
		ID:     h.ids.NewID(),
		Title:  strings.TrimSpace(*req.Title),
		Status: status,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_create_task", "Erro ao criar tarefa.")
		return
	}

	c.JSON(http.StatusCreated, task)
}

// Update move a tarefa entre colunas ou renomeia.
func (h *KanbanHandler) Update(c *gin.Context) {
	var req KanbanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			httperr.BadRequest(c, "missing_fields", "Informe o título da tarefa.")
			return
		}
		updates["title"] = title
	}
	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if !kanbanStatuses[status] {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		updates["status"] = status
	}
	if len(updates) == 0 {
		httperr.BadRequest(c, "invalid_request", "Nada para atualizar.")
		return
	}

	ctx := c.Request.Context()
	res := h.db.WithContext(ctx).Model(&models.KanbanTask{}).Where("id = ?", c.Param("id")).Updates(updates)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_task", "Erro ao atualizar tarefa.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "task_not_found", "Tarefa não encontrada.")
		return
	}

	var task models.KanbanTask
	if err := h.db.WithContext(ctx).Where("id = ?", c.Param("id")).First(&task).Error; err != nil {
		httperr.Internal(c, "failed_to_load_task", "Erro ao carregar tarefa.")
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *KanbanHandler) Delete(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).Where("id = ?", c.Param("id")).Delete(&models.KanbanTask{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_task", "Erro ao remover tarefa.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "task_not_found", "Tarefa não encontrada.")
		return
	}
	c.Status(http.StatusNoContent)
}
