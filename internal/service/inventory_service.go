package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
)

type InventoryService interface {
	List(ctx context.Context, q dto.InventoryListQuery) (*dto.InventoryListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error)
	Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddTransaction(ctx context.Context, req dto.CreateInventoryTransactionRequest) (*dto.InventoryTransactionResponse, error)
	Transactions(ctx context.Context, id uuid.UUID, q dto.ListQuery) (*dto.InventoryTransactionListResponse, error)
	Summary(ctx context.Context, id uuid.UUID, q dto.ListQuery) (*dto.InventorySummaryResponse, error)
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func mapInventory(inv model.Inventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:              inv.ID,
		Name:            inv.Name,
		InitialQuantity: inv.InitialQuantity,
		Unit:            inv.Unit,
		CategoryID:      inv.CategoryID,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

func (s *inventoryService) List(ctx context.Context, q dto.InventoryListQuery) (*dto.InventoryListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	categoryID, err := parseOptionalUUID("get_inventories", "category_id", q.CategoryID)
	if err != nil {
		return nil, err
	}
	inventories, count, err := s.repo.List(ctx, spec, categoryID)
	if err != nil {
		return nil, apierror.Store("get_inventories", err)
	}
	resp := &dto.InventoryListResponse{Inventories: make([]dto.InventoryResponse, 0, len(inventories)), Count: count}
	for _, inv := range inventories {
		resp.Inventories = append(resp.Inventories, mapInventory(inv))
	}
	return resp, nil
}

func (s *inventoryService) Get(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error) {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_inventory", err)
	}
	if inv == nil {
		return nil, apierror.NotFound("get_inventory", "inventory", id.String())
	}
	resp := mapInventory(*inv)
	return &resp, nil
}

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	inv := &model.Inventory{
		Name:            req.Name,
		InitialQuantity: req.InitialQuantity,
		Unit:            req.Unit,
		CategoryID:      req.CategoryID,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, apierror.Store("create_inventory", err)
	}
	resp := mapInventory(*inv)
	return &resp, nil
}

func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.InitialQuantity != nil {
		fields["initial_quantity"] = *req.InitialQuantity
	}
	if req.Unit != nil {
		fields["unit"] = *req.Unit
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}

	inv, err := s.repo.Updates(ctx, id, fields)
	if err != nil {
		return nil, apierror.Store("update_inventory", err)
	}
	if inv == nil {
		return nil, apierror.NotFound("update_inventory", "inventory", id.String())
	}
	resp := mapInventory(*inv)
	return &resp, nil
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apierror.Store("delete_inventory", err)
	}
	if inv == nil {
		return apierror.NotFound("delete_inventory", "inventory", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Store("delete_inventory", err)
	}
	return nil
}

func (s *inventoryService) AddTransaction(ctx context.Context, req dto.CreateInventoryTransactionRequest) (*dto.InventoryTransactionResponse, error) {
	inv, err := s.repo.FindByID(ctx, req.InventoryID)
	if err != nil {
		return nil, apierror.Store("create_inventory_transaction", err)
	}
	if inv == nil {
		return nil, apierror.NotFound("create_inventory_transaction", "inventory", req.InventoryID.String())
	}
	if req.Entry == 0 && req.Sale == 0 {
		return nil, apierror.Validation("create_inventory_transaction", "transaction must record an entry or a sale")
	}

	tx := &model.InventoryTransaction{
		InventoryID: req.InventoryID,
		Entry:       req.Entry,
		Sale:        req.Sale,
	}
	if err := s.repo.AddTransaction(ctx, tx); err != nil {
		return nil, apierror.Store("create_inventory_transaction", err)
	}
	return &dto.InventoryTransactionResponse{
		ID:          tx.ID,
		InventoryID: tx.InventoryID,
		Entry:       tx.Entry,
		Sale:        tx.Sale,
		CreatedAt:   tx.CreatedAt,
	}, nil
}

// Transactions returns an inventory's movement history over the query's
// optional date range, oldest first.
func (s *inventoryService) Transactions(ctx context.Context, id uuid.UUID, q dto.ListQuery) (*dto.InventoryTransactionListResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_inventory_transactions", err)
	}
	if inv == nil {
		return nil, apierror.NotFound("get_inventory_transactions", "inventory", id.String())
	}

	txs, err := s.repo.ListTransactions(ctx, id, spec.StartDate, spec.EndDate)
	if err != nil {
		return nil, apierror.Store("get_inventory_transactions", err)
	}

	resp := &dto.InventoryTransactionListResponse{
		Transactions: make([]dto.InventoryTransactionResponse, 0, len(txs)),
		Count:        int64(len(txs)),
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, dto.InventoryTransactionResponse{
			ID:          tx.ID,
			InventoryID: tx.InventoryID,
			Entry:       tx.Entry,
			Sale:        tx.Sale,
			CreatedAt:   tx.CreatedAt,
		})
	}
	return resp, nil
}

// Summary rolls up an inventory's movements over the query's optional
// date range: remaining = initial + Σ entry − Σ sale.
func (s *inventoryService) Summary(ctx context.Context, id uuid.UUID, q dto.ListQuery) (*dto.InventorySummaryResponse, error) {
	spec, err := q.Normalize()
	if err != nil {
		return nil, err
	}
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Store("get_inventory_summary", err)
	}
	if inv == nil {
		return nil, apierror.NotFound("get_inventory_summary", "inventory", id.String())
	}

	txs, err := s.repo.ListTransactions(ctx, id, spec.StartDate, spec.EndDate)
	if err != nil {
		return nil, apierror.Store("get_inventory_summary", err)
	}

	totalEntry, totalSale := 0, 0
	for _, tx := range txs {
		totalEntry += tx.Entry
		totalSale += tx.Sale
	}
	net := decimal.NewFromInt(int64(totalEntry - totalSale))

	return &dto.InventorySummaryResponse{
		InventoryResponse: mapInventory(*inv),
		TotalEntry:        totalEntry,
		TotalSale:         totalSale,
		TransactionCount:  len(txs),
		RemainingQuantity: inv.InitialQuantity.Add(net),
	}, nil
}
