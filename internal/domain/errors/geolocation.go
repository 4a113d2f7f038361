package errors

// Client-reported geolocation failure kinds, mirroring the browser
// Geolocation API error codes. The server never acquires a position itself;
// clients that fail to get one report the kind so the listing endpoint can
// answer with the matching guidance.
const (
	GeoKindPermissionDenied = "permission_denied"
	GeoKindUnavailable      = "unavailable"
	GeoKindTimeout          = "timeout"
)

// TranslateGeoFailure maps a reported failure kind to its AppError. Unknown
// kinds read as "could not determine position".
func TranslateGeoFailure(kind string) error {
	switch kind {
	case GeoKindPermissionDenied:
		return ErrGeoPermissionDenied
	case GeoKindTimeout:
		return ErrGeoTimeout
	default:
		return ErrGeoUnavailable
	}
}
