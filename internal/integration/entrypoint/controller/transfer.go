package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/e-budget/backend/internal/application/usecase/transfer"
	"github.com/e-budget/backend/internal/integration/entrypoint/dto"
)

// TransferController handles transfer endpoints. Transfers cannot be edited.
type TransferController struct {
	createUseCase *transfer.CreateTransferUseCase
	listUseCase   *transfer.ListTransfersUseCase
	getUseCase    *transfer.GetTransferUseCase
	deleteUseCase *transfer.DeleteTransferUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(
	createUseCase *transfer.CreateTransferUseCase,
	listUseCase *transfer.ListTransfersUseCase,
	getUseCase *transfer.GetTransferUseCase,
	deleteUseCase *transfer.DeleteTransferUseCase,
) *TransferController {
	return &TransferController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /transfers requests.
func (c *TransferController) Create(ctx *gin.Context) {
	var req dto.CreateTransferRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input, err := req.ToInput()
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(output.Transfer))
}

// List handles GET /transfers requests.
func (c *TransferController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransferListResponse(output.Transfers))
}

// Get handles GET /transfers/:id requests.
func (c *TransferController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transfer.GetTransferInput{TransferID: id})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransferResponse(output.Transfer))
}

// Delete handles DELETE /transfers/:id requests.
func (c *TransferController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transfer.DeleteTransferInput{TransferID: id}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
