package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

// In-memory repository stubs. They mirror the store contract the services
// rely on: FindByID returns (nil, nil) when absent, Updates with an empty
// field map is a no-op returning the current record, Delete is idempotent.

// ── Category ─────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context, spec dto.FilterSpec) ([]model.Category, int64, error) {
	var all []model.Category
	for _, c := range r.categories {
		if spec.Search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(spec.Search)) {
			all = append(all, *c)
		}
	}
	return paginate(all, spec), int64(len(all)), nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	return r.categories[id], nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["name"]; ok {
		c.Name = v.(string)
	}
	return c, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

// ── Purchase ─────────────────────────────────────────────────────────────────

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) List(_ context.Context, spec dto.FilterSpec, categoryID, createdBy *uuid.UUID) ([]model.Purchase, int64, error) {
	var all []model.Purchase
	for _, p := range r.purchases {
		if spec.Search != "" && !strings.Contains(strings.ToLower(p.ItemName), strings.ToLower(spec.Search)) {
			continue
		}
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		if createdBy != nil && p.CreatedBy != *createdBy {
			continue
		}
		all = append(all, *p)
	}
	return paginate(all, spec), int64(len(all)), nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	return r.purchases[id], nil
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["item_name"]; ok {
		p.ItemName = v.(string)
	}
	if v, ok := fields["quantity"]; ok {
		p.Quantity = v.(decimal.Decimal)
	}
	if v, ok := fields["total_price"]; ok {
		p.TotalPrice = v.(decimal.Decimal)
	}
	if v, ok := fields["notes"]; ok {
		n := v.(string)
		p.Notes = &n
	}
	return p, nil
}

func (r *stubPurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.purchases, id)
	return nil
}

// ── Transformation ───────────────────────────────────────────────────────────

type stubTransformationRepo struct {
	transformations map[uuid.UUID]*model.Transformation
}

func newStubTransformationRepo() *stubTransformationRepo {
	return &stubTransformationRepo{transformations: make(map[uuid.UUID]*model.Transformation)}
}

func (r *stubTransformationRepo) List(_ context.Context, spec dto.FilterSpec, purchaseID *uuid.UUID) ([]model.Transformation, int64, error) {
	var all []model.Transformation
	for _, t := range r.transformations {
		if spec.Search != "" && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(spec.Search)) {
			continue
		}
		if purchaseID != nil && t.PurchaseID != *purchaseID {
			continue
		}
		all = append(all, *t)
	}
	return paginate(all, spec), int64(len(all)), nil
}

func (r *stubTransformationRepo) ListByPurchase(_ context.Context, purchaseID uuid.UUID) ([]model.Transformation, error) {
	var all []model.Transformation
	for _, t := range r.transformations {
		if t.PurchaseID == purchaseID {
			all = append(all, *t)
		}
	}
	return all, nil
}

func (r *stubTransformationRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Transformation, error) {
	return r.transformations[id], nil
}

func (r *stubTransformationRepo) Create(_ context.Context, t *model.Transformation) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.CreatedAt = time.Now()
	r.transformations[t.ID] = t
	return nil
}

func (r *stubTransformationRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Transformation, error) {
	t, ok := r.transformations[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["name"]; ok {
		t.Name = v.(string)
	}
	if v, ok := fields["remaining_quantity"]; ok {
		t.RemainingQuantity = v.(decimal.Decimal)
	}
	return t, nil
}

func (r *stubTransformationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transformations, id)
	return nil
}

// ── Transformation step ──────────────────────────────────────────────────────

type stubStepRepo struct {
	steps map[uuid.UUID]*model.TransformationStep
}

func newStubStepRepo() *stubStepRepo {
	return &stubStepRepo{steps: make(map[uuid.UUID]*model.TransformationStep)}
}

func (r *stubStepRepo) List(_ context.Context, spec dto.FilterSpec, transformationID *uuid.UUID) ([]model.TransformationStep, int64, error) {
	var all []model.TransformationStep
	for _, s := range r.steps {
		if spec.Search != "" && !strings.Contains(strings.ToLower(s.StepName), strings.ToLower(spec.Search)) {
			continue
		}
		if transformationID != nil && s.TransformationID != *transformationID {
			continue
		}
		all = append(all, *s)
	}
	return paginate(all, spec), int64(len(all)), nil
}

func (r *stubStepRepo) ListByTransformation(_ context.Context, transformationID uuid.UUID, spec dto.FilterSpec) ([]model.TransformationStep, int64, error) {
	all, _ := r.ListAllByTransformation(context.Background(), transformationID)
	return paginate(all, spec), int64(len(all)), nil
}

func (r *stubStepRepo) ListAllByTransformation(_ context.Context, transformationID uuid.UUID) ([]model.TransformationStep, error) {
	var all []model.TransformationStep
	for _, s := range r.steps {
		if s.TransformationID == transformationID {
			all = append(all, *s)
		}
	}
	return all, nil
}

func (r *stubStepRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TransformationStep, error) {
	return r.steps[id], nil
}

func (r *stubStepRepo) Create(_ context.Context, s *model.TransformationStep) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	r.steps[s.ID] = s
	return nil
}

func (r *stubStepRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.TransformationStep, error) {
	s, ok := r.steps[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["step_name"]; ok {
		s.StepName = v.(string)
	}
	if v, ok := fields["portions"]; ok {
		s.Portions = v.(int)
	}
	if v, ok := fields["quantity"]; ok {
		s.Quantity = v.(decimal.Decimal)
	}
	return s, nil
}

func (r *stubStepRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.steps, id)
	return nil
}

// ── User ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) List(_ context.Context, spec dto.FilterSpec) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range r.users {
		if spec.Search == "" || strings.Contains(strings.ToLower(u.Email), strings.ToLower(spec.Search)) {
			all = append(all, *u)
		}
	}
	return paginate(all, spec), int64(len(all)), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["email"]; ok {
		u.Email = v.(string)
	}
	if v, ok := fields["full_name"]; ok {
		u.FullName = v.(string)
	}
	if v, ok := fields["role"]; ok {
		u.Role = v.(string)
	}
	if v, ok := fields["password_hash"]; ok {
		u.PasswordHash = v.(string)
	}
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

// ── Inventory ────────────────────────────────────────────────────────────────

type stubInventoryRepo struct {
	inventories  map[uuid.UUID]*model.Inventory
	transactions []*model.InventoryTransaction
	nextTxID     uint
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{inventories: make(map[uuid.UUID]*model.Inventory)}
}

func (r *stubInventoryRepo) List(_ context.Context, spec dto.FilterSpec, categoryID *uuid.UUID) ([]model.Inventory, int64, error) {
	var all []model.Inventory
	for _, inv := range r.inventories {
		if spec.Search != "" && !strings.Contains(strings.ToLower(inv.Name), strings.ToLower(spec.Search)) {
			continue
		}
		if categoryID != nil && (inv.CategoryID == nil || *inv.CategoryID != *categoryID) {
			continue
		}
		all = append(all, *inv)
	}
	return paginate(all, spec), int64(len(all)), nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Inventory, error) {
	return r.inventories[id], nil
}

func (r *stubInventoryRepo) Create(_ context.Context, inv *model.Inventory) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now()
	r.inventories[inv.ID] = inv
	return nil
}

func (r *stubInventoryRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Inventory, error) {
	inv, ok := r.inventories[id]
	if !ok {
		return nil, nil
	}
	if v, ok := fields["name"]; ok {
		inv.Name = v.(string)
	}
	if v, ok := fields["initial_quantity"]; ok {
		inv.InitialQuantity = v.(decimal.Decimal)
	}
	return inv, nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.inventories, id)
	return nil
}

func (r *stubInventoryRepo) AddTransaction(_ context.Context, tx *model.InventoryTransaction) error {
	r.nextTxID++
	tx.ID = r.nextTxID
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	r.transactions = append(r.transactions, tx)
	return nil
}

func (r *stubInventoryRepo) ListTransactions(_ context.Context, inventoryID uuid.UUID, start, end *time.Time) ([]model.InventoryTransaction, error) {
	var all []model.InventoryTransaction
	for _, tx := range r.transactions {
		if tx.InventoryID != inventoryID {
			continue
		}
		if start != nil && tx.CreatedAt.Before(*start) {
			continue
		}
		if end != nil && tx.CreatedAt.After(*end) {
			continue
		}
		all = append(all, *tx)
	}
	return all, nil
}

// paginate applies a filter's offset/limit window to an in-memory slice.
func paginate[T any](all []T, spec dto.FilterSpec) []T {
	if spec.Offset >= len(all) {
		return nil
	}
	end := spec.Offset + spec.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[spec.Offset:end]
}
