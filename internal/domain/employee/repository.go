package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	ListByShopIDs(ctx context.Context, shopIDs []string) ([]Employee, error)
	Update(ctx context.Context, updated Employee) error
	Delete(ctx context.Context, id string) error
}
