package translator

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageEn = "en"
	LanguageTh = "th"
)

var supported = []language.Tag{language.English}

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	supported = supported[:0]
	for _, lang := range cfg.SupportedLanguages {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		supported = append(supported, tag)
	}
	if len(supported) == 0 {
		supported = append(supported, language.English)
	}

	files, err := filepath.Glob(filepath.Join(cfg.TranslationFolder, "*.toml"))
	if err != nil || len(files) == 0 {
		zap.L().Error("no translation files found", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, file := range files {
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", file), zap.Error(err))
		}
	}
}

// MatchLanguage picks the best supported language for an Accept-Language header value.
func MatchLanguage(acceptLanguage string) string {
	if acceptLanguage == "" {
		return LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	_, index, confidence := language.NewMatcher(supported).Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}
	base, _ := supported[index].Base()
	return base.String()
}
