// Package i18n holds the user-facing message table. Spanish is the fallback
// locale (the product ships Spanish-first), English is the alternate.
package i18n

type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

const Fallback = LocaleES

var messages = map[Locale]map[string]string{
	LocaleES: {
		"email.required":       "El email es requerido",
		"email.invalid":        "Por favor ingresa un email válido",
		"password.required":    "La contraseña es requerida",
		"password.too_short":   "La contraseña debe tener al menos 8 caracteres",
		"title.required":       "El título es requerido",
		"title.too_short":      "El título debe tener al menos 5 caracteres",
		"title.too_long":       "El título no puede exceder 200 caracteres",
		"content.required":     "El contenido es requerido",
		"content.empty":        "El contenido no puede estar vacío",
		"video.invalid_url":    "Por favor ingresa una URL válida.",
		"video.wrong_platform": "URL debe ser de YouTube o Vimeo.",
		"image.type":           "Solo se permiten archivos de imagen (JPEG, PNG, WebP, GIF)",
		"image.too_large":      "El archivo no puede exceder 5MB",
		"slug.taken":           "Este slug ya está en uso.",
	},
	LocaleEN: {
		"email.required":       "Email is required",
		"email.invalid":        "Please enter a valid email",
		"password.required":    "Password is required",
		"password.too_short":   "Password must be at least 8 characters",
		"title.required":       "Title is required",
		"title.too_short":      "Title must be at least 5 characters",
		"title.too_long":       "Title cannot exceed 200 characters",
		"content.required":     "Content is required",
		"content.empty":        "Content cannot be empty",
		"video.invalid_url":    "Please enter a valid URL.",
		"video.wrong_platform": "URL must be from YouTube or Vimeo.",
		"image.type":           "Only image files are allowed (JPEG, PNG, WebP, GIF)",
		"image.too_large":      "File cannot exceed 5MB",
		"slug.taken":           "This slug is already in use.",
	},
}

// T resolves key for the given locale, falling back to the fallback locale
// and finally to the key itself.
func T(locale Locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if locale != Fallback {
		if msg, ok := messages[Fallback][key]; ok {
			return msg
		}
	}
	return key
}

// ParseLocale maps a configured locale name onto a supported Locale,
// defaulting to the fallback.
func ParseLocale(name string) Locale {
	switch Locale(name) {
	case LocaleEN:
		return LocaleEN
	case LocaleES:
		return LocaleES
	default:
		return Fallback
	}
}
