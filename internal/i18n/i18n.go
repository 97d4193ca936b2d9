// Package i18n translates user-facing messages.
// English and Indonesian are bundled; English is the fallback for both
// unknown locales and missing keys.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the fallback locale.
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header carrying the caller's language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator holds the message catalogue per locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the bundled messages.
func NewTranslator() *Translator {
	return &Translator{messages: defaultMessages()}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Supports reports whether locale has a catalogue.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// Translate returns the message for key in locale. Missing keys fall back to
// DefaultLocale, then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks the first language of the Accept-Language header,
// reduced to its base tag, if it is supported.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	lang := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	lang = strings.ToLower(lang)

	if GetTranslator().Supports(lang) {
		return lang
	}
	return DefaultLocale
}

// T translates key for the locale of the request.
func T(c *gin.Context, key string) string {
	return GetTranslator().Translate(key, GetLocale(c))
}

func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:       "Invalid request",
			ErrKeyInvalidRequestBody:   "Invalid request body",
			ErrKeyInternalError:        "An unexpected error occurred",
			ErrKeyUnauthorized:         "Unauthorized",
			ErrKeyAPIKeyRequired:       "API key is required",
			ErrKeyInvalidAPIKey:        "Invalid API key",
			ErrKeyNotFound:             "Not found",
			ErrKeyRateLimitExceeded:    "Too many requests, please try again later",
			ErrKeyConflict:             "Conflict",
			ErrKeyInvalidToken:         "Invalid or expired token",
			ErrKeyTokenRequired:        "Authentication token is required",
			ErrKeyTimeout:              "The request took too long to complete",
			ErrKeyUnavailable:          "Storage is not available",
			ErrKeyInvalidConfiguration: "The batch parameters are not valid",
			ErrKeyBatchExists:          "QR codes were already generated for this order",
			ErrKeyBatchNotFound:        "No QR codes have been generated for this order",
			ErrKeyEmptyBatch:           "The order has no units to label",
			ErrKeyInvalidCode:          "Not a valid QR code",
			ErrKeyCodeNotFound:         "This QR code is not registered",
			ErrKeyIdempotencyConflict:  "A request with this idempotency key is still in progress",

			SuccessKeyBatchGenerated: "QR codes generated successfully",
			SuccessKeyProfileUpdated: "Packaging profile updated",
		},
		"id": {
			ErrKeyInvalidRequest:       "Permintaan tidak valid",
			ErrKeyInvalidRequestBody:   "Isi permintaan tidak valid",
			ErrKeyInternalError:        "Terjadi kesalahan yang tidak terduga",
			ErrKeyUnauthorized:         "Tidak diizinkan",
			ErrKeyAPIKeyRequired:       "API key wajib diisi",
			ErrKeyInvalidAPIKey:        "API key tidak valid",
			ErrKeyNotFound:             "Tidak ditemukan",
			ErrKeyRateLimitExceeded:    "Terlalu banyak permintaan, coba lagi nanti",
			ErrKeyConflict:             "Konflik",
			ErrKeyInvalidToken:         "Token tidak valid atau kedaluwarsa",
			ErrKeyTokenRequired:        "Token autentikasi wajib diisi",
			ErrKeyTimeout:              "Permintaan terlalu lama untuk diselesaikan",
			ErrKeyUnavailable:          "Penyimpanan tidak tersedia",
			ErrKeyInvalidConfiguration: "Parameter batch tidak valid",
			ErrKeyBatchExists:          "Kode QR untuk pesanan ini sudah dibuat",
			ErrKeyBatchNotFound:        "Belum ada kode QR untuk pesanan ini",
			ErrKeyEmptyBatch:           "Pesanan tidak memiliki unit untuk diberi label",
			ErrKeyInvalidCode:          "Bukan kode QR yang valid",
			ErrKeyCodeNotFound:         "Kode QR ini tidak terdaftar",
			ErrKeyIdempotencyConflict:  "Permintaan dengan idempotency key ini masih diproses",

			SuccessKeyBatchGenerated: "Kode QR berhasil dibuat",
			SuccessKeyProfileUpdated: "Profil kemasan diperbarui",
		},
	}
}
