package state

import (
	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/domain"
)

// UpdateProfile shallow-merges u into the professional. Services, rating and
// identity are never touched here.
func (a *App) UpdateProfile(u domain.ProfileUpdate) (domain.Professional, error) {
	if err := a.requireProfile("update profile"); err != nil {
		return domain.Professional{}, err
	}
	if err := domain.ValidateProfileUpdate(u); err != nil {
		return domain.Professional{}, a.rejected("update profile", err)
	}
	next := a.pro.Clone()
	setString(&next.Name, u.Name)
	setString(&next.Email, u.Email)
	setString(&next.Phone, u.Phone)
	setString(&next.Photo, u.Photo)
	setString(&next.Description, u.Description)
	setString(&next.Experience, u.Experience)
	setString(&next.Certifications, u.Certifications)
	setString(&next.Availability, u.Availability)
	if u.Specialty != nil {
		next.Specialty = append([]string(nil), u.Specialty...)
	}
	if u.WorkZone != nil {
		next.WorkZone = append([]string(nil), u.WorkZone...)
	}
	if u.PaymentMethods != nil {
		next.PaymentMethods = append([]string(nil), u.PaymentMethods...)
	}
	a.pro = &next
	a.log.Info("profile updated", zap.String("professional", next.ID))
	return next.Clone(), nil
}

// RemovePhoto clears the profile photo.
func (a *App) RemovePhoto() error {
	empty := ""
	_, err := a.UpdateProfile(domain.ProfileUpdate{Photo: &empty})
	return err
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
