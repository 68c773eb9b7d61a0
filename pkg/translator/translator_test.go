package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamicsamic/Todo/pkg/translator"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitTranslator_LoadsSupportedLanguages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.toml", `hello = "Hello english"`)
	writeFile(t, dir, "fr.toml", `hello = "Bonjour"`)
	writeFile(t, dir, "de.toml", `hello = "Hallo"`)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	for lang, expected := range map[string]string{"en": "Hello english", "fr": "Bonjour", "de": "Hello english"} {
		msg, err := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn).
			Localize(&i18n.LocalizeConfig{MessageID: "hello"})
		require.NoError(t, err)
		assert.Equal(t, expected, msg, lang)
	}
}

func TestInitTranslator_ShippedTranslationsAgree(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	msg, err := i18n.NewLocalizer(translator.Translator, translator.LanguageFr).Localize(&i18n.LocalizeConfig{
		MessageID:    "todoNotFound",
		TemplateData: map[string]any{"TodoID": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "Liste 3 introuvable.", msg)
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
	require.NotNil(t, translator.Translator)
}

func TestMatch(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  t.TempDir(),
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	assert.Equal(t, translator.LanguageFr, translator.Match("fr-FR,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, translator.LanguageEn, translator.Match("en-GB"))
	assert.Equal(t, translator.LanguageEn, translator.Match("de"))
	assert.Equal(t, translator.LanguageEn, translator.Match(""))
}
