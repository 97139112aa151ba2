package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/domain"
)

// SaveService publishes a new service when editingID is empty, otherwise it
// replaces the fields of the existing one and keeps its ID. The service list
// is replaced wholesale on success and untouched on any error.
func (a *App) SaveService(editingID string, in domain.ServiceInput) (domain.Service, error) {
	if err := a.requireProfile("save service"); err != nil {
		return domain.Service{}, err
	}
	if err := domain.ValidateService(in); err != nil {
		return domain.Service{}, a.rejected("save service", err)
	}
	services := a.pro.Clone().Services
	svc := domain.Service{
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		Images:      append([]string{}, in.Images...),
	}
	if editingID == "" {
		svc.ID = a.newID()
		services = append(services, svc)
	} else {
		idx := indexOfService(services, editingID)
		if idx < 0 {
			return domain.Service{}, fmt.Errorf("save service %s: %w", editingID, domain.ErrServiceNotFound)
		}
		svc.ID = editingID
		services[idx] = svc
	}
	a.pro.Services = services
	a.log.Info("service saved", zap.String("service", svc.ID), zap.Bool("new", editingID == ""))
	return svc.Clone(), nil
}

func (a *App) DeleteService(id string) error {
	if err := a.requireProfile("delete service"); err != nil {
		return err
	}
	idx := indexOfService(a.pro.Services, id)
	if idx < 0 {
		return fmt.Errorf("delete service %s: %w", id, domain.ErrServiceNotFound)
	}
	services := make([]domain.Service, 0, len(a.pro.Services)-1)
	services = append(services, a.pro.Services[:idx]...)
	services = append(services, a.pro.Services[idx+1:]...)
	a.pro.Services = services
	a.log.Info("service deleted", zap.String("service", id))
	return nil
}

func indexOfService(services []domain.Service, id string) int {
	for i, s := range services {
		if s.ID == id {
			return i
		}
	}
	return -1
}
