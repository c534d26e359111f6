package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCredentials   = errors.New("geçersiz e-posta veya şifre")
	ErrNotAuthorized        = errors.New("bu panele yalnızca yönetici hesapları girebilir")
	ErrNotAuthenticated     = errors.New("oturum açılmamış")
	ErrNotFound             = errors.New("kayıt bulunamadı")
	ErrPasswordMismatch     = errors.New("şifreler eşleşmiyor")
	ErrAdminPromotionFailed = errors.New("kullanıcı oluşturuldu ancak yönetici rolü atanamadı")
	ErrFormClosed           = errors.New("açık bir form yok")
	ErrAlreadySaved         = errors.New("bu form oturumunda ürün zaten kaydedildi")
	ErrSaveInProgress       = errors.New("kayıt işlemi zaten sürüyor")
)

// ValidationError is returned before any network call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("zorunlu alanlar eksik veya geçersiz: %s", strings.Join(e.Fields, ", "))
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
