package i18n

import "errors"

var (
	ErrNilAdapter         = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode  = errors.New("empty language code in translations")
	ErrParsingCancelled   = errors.New("translation parsing cancelled")
	ErrFailedToParseYAML  = errors.New("failed to parse YAML content")
	ErrFailedToParseJSON  = errors.New("failed to parse JSON content")
	ErrInvalidStructure   = errors.New("invalid translation structure")
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadDir    = errors.New("failed to read translation directory")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrNoTranslationFiles = errors.New("no translation files found")
)
