// dev-ui-translate — localizes Quarkus Dev UI extension pages and
// translates the extracted strings with AI providers.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/quarkusio/dev-ui-extension-translator/config"
	"github.com/quarkusio/dev-ui-extension-translator/descriptor"
	"github.com/quarkusio/dev-ui-extension-translator/extract"
	"github.com/quarkusio/dev-ui-extension-translator/i18n"
	"github.com/quarkusio/dev-ui-extension-translator/langmeta"
	"github.com/quarkusio/dev-ui-extension-translator/merge"
	"github.com/quarkusio/dev-ui-extension-translator/resource"
	"github.com/quarkusio/dev-ui-extension-translator/rewrite"
	"github.com/quarkusio/dev-ui-extension-translator/settings"
	"github.com/quarkusio/dev-ui-extension-translator/translate"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dev-ui-translate",
		Short: i18n.T("Localize and translate Quarkus Dev UI extension pages"),
		Long: `dev-ui-translate — localize Quarkus Dev UI extension pages.

Scans the extension's dev-ui JavaScript sources for user-visible string
and template literals, wraps them in msg() localization calls, maintains
the i18n/en.js resource module, and translates it into target languages
and their regional dialects using AI providers.

Commands:
  status      Show detected project layout and resource statistics
  extract     Extract strings, rewrite sources, update i18n/en.js
  translate   Extract, then translate into target languages
  auth        Manage provider API keys

AI Providers:
  google         Google AI (Gemini) — API key required
  groq           Groq — API key required
  ollama         Ollama local server
  custom-openai  Custom OpenAI-compatible endpoint`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env in the extension root may carry the API key.
			_ = godotenv.Load(filepath.Join(rootDir, ".env"))
		},
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Extension root directory")

	root.AddCommand(
		newStatusCmd(),
		newExtractCmd(),
		newTranslateCmd(),
		newAuthCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dev-ui-translate version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// Project loading
// ---------------------------------------------------------------------------

// loadProject detects the extension layout under dir and applies the
// optional .devui-translate.yaml on top.
func loadProject(dir string) (*config.Project, *config.ProjectFile) {
	proj := config.Detect(dir)

	pf, err := config.LoadProjectFile(proj.Root)
	if err != nil {
		logWarning("%v", err)
		pf = nil
	}
	if pf != nil && pf.DevUIDir != "" {
		proj.SetDevUIDir(pf.DevUIDir)
	}
	return proj, pf
}

// ensureProject loads the project, prompting for the extension root
// when the detected location has no Dev UI sources.
func ensureProject() (*config.Project, *config.ProjectFile) {
	proj, pf := loadProject(rootDir)
	if proj.HasDevUI() {
		return proj, pf
	}

	fmt.Fprintf(os.Stderr, "  No Dev UI sources under %s\n", proj.DevUIDir)
	fmt.Fprintf(os.Stderr, "  Extension root directory [%s]: ", rootDir)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		if input := strings.TrimSpace(scanner.Text()); input != "" {
			return loadProject(input)
		}
	}
	return proj, pf
}

// ---------------------------------------------------------------------------
// status (read-only: project layout + resource stats)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show detected project layout and resource statistics",
		Long: `Show the detected extension layout, the runtime descriptor metadata,
and per-locale resource statistics. Does not modify any files.`,
		Run: func(cmd *cobra.Command, args []string) {
			runStatus()
		},
	}
}

func runStatus() {
	proj, _ := loadProject(rootDir)

	fmt.Fprintf(os.Stderr, "\n%sExtension%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", proj.Root)
	fmt.Fprintf(os.Stderr, "  Dev UI:     %s\n", describeDir(proj.DevUIDir, proj.HasDevUI()))

	ext, err := descriptor.Read(proj.Root)
	switch {
	case err != nil:
		logWarning("Cannot read runtime descriptor: %v", err)
	case ext == nil:
		fmt.Fprintf(os.Stderr, "  Descriptor: not found (namespace falls back to \"extension\")\n")
	default:
		fmt.Fprintf(os.Stderr, "  Artifact:   %s\n", ext.ArtifactID)
		if ext.Description != "" {
			fmt.Fprintf(os.Stderr, "  Descr.:     %s\n", ext.Description)
		}
	}

	fmt.Fprintln(os.Stderr)

	if len(proj.Locales) == 0 {
		logInfo("No resource modules yet. Run 'dev-ui-translate extract' to create i18n/en.js.")
		return
	}

	fmt.Fprintf(os.Stderr, "%sResources%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	for _, locale := range proj.Locales {
		m, err := resource.ParseFile(proj.ResourcePath(locale))
		if err != nil {
			logWarning("%v", err)
			continue
		}
		total, templated := m.Stats()
		fmt.Fprintf(os.Stderr, "  %-8s %-24s %4d entries, %d templated\n",
			locale, langmeta.Label(locale), total, templated)
	}
	fmt.Fprintln(os.Stderr)
}

func describeDir(dir string, exists bool) string {
	if exists {
		return dir
	}
	return dir + " (missing)"
}

// ---------------------------------------------------------------------------
// extract (scan sources, rewrite, update en.js)
// ---------------------------------------------------------------------------

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Extract strings, rewrite sources, update i18n/en.js",
		Long: `Scan the Dev UI JavaScript sources for user-visible literals, wrap
them in msg() localization calls, and merge the extracted entries into
i18n/en.js. Existing en.js entries win over newly extracted ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, _ := ensureProject()
			_, err := doExtract(proj)
			if err != nil {
				return err
			}
			logSuccess(i18n.T("Extraction complete"))
			return nil
		},
	}
}

// doExtract runs the shared extraction pipeline: descriptor metadata,
// source scanning, rewriting, and the en.js merge. Returns the merged
// base-locale map.
func doExtract(proj *config.Project) (*resource.Map, error) {
	namespace := "extension"
	description := ""

	ext, err := descriptor.Read(proj.Root)
	if err != nil {
		logWarning("%v", err)
	}
	if ext == nil {
		logWarning("No usable runtime/pom.xml, using namespace %q", namespace)
	} else {
		if ext.ArtifactID != "" {
			namespace = ext.ArtifactID
		}
		description = ext.Description
	}

	if !proj.HasDevUI() {
		return nil, fmt.Errorf("no Dev UI sources at %s", proj.DevUIDir)
	}

	files, err := extract.FindSources(proj.DevUIDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %s", i18n.T("No Dev UI sources found"), proj.DevUIDir)
	}

	logInfo(i18n.T("Extracting user-visible strings"))
	logInfo(i18n.N("Found %d source file", "Found %d source files", len(files)), len(files))

	extracted := resource.NewMap()
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		content := string(data)

		fx := extract.Process(content, namespace)
		if len(fx.Plain) > 0 || len(fx.Templates) > 0 {
			updated := rewrite.Apply(content, fx.Plain, fx.Templates)
			if updated != content {
				if err := os.WriteFile(file, []byte(updated), 0644); err != nil {
					return nil, fmt.Errorf("writing %s: %w", file, err)
				}
				logInfo("Updated %s with localization hooks", relPath(proj.Root, file))
			}
		}

		for _, key := range fx.Entries.Keys() {
			e, _ := fx.Entries.Get(key)
			extracted.SetIfAbsent(key, e)
		}
	}

	if description != "" {
		extracted.SetIfAbsent(namespace+"-meta-description", resource.Entry{Value: description})
	}

	enPath := proj.ResourcePath("en")
	existing, err := resource.ParseFile(enPath)
	if err != nil {
		return nil, err
	}
	base := merge.Merge(existing, extracted)
	if err := base.WriteFile(enPath); err != nil {
		return nil, err
	}

	total, templated := base.Stats()
	logSuccess("%s: %d entries (%d templated)", relPath(proj.Root, enPath), total, templated)
	return base, nil
}

// ---------------------------------------------------------------------------
// translate (extract, then translate into target languages)
// ---------------------------------------------------------------------------

func newTranslateCmd() *cobra.Command {
	var (
		langs    string
		dialects string

		provider string
		apiKey   string
		model    string
		baseURL  string
	)

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Extract, then translate into target languages",
		Long: `Run the extraction pipeline and translate i18n/en.js into the target
languages. Each language gets a full resource file; its dialects get
sparse files holding only the entries that differ.

Examples:
  # Translate to French and German (default dialects: fr-FR, fr-CA, de-AT, de-CH)
  dev-ui-translate translate --provider groq --lang fr,de

  # Custom dialect set
  dev-ui-translate translate --provider google --lang fr --dialects fr-CA

  # Local Ollama, no API key
  dev-ui-translate translate --provider ollama --model llama3.2 --lang ja`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(translateArgs{
				langs: langs, dialects: dialects,
				provider: provider, apiKey: apiKey,
				model: model, baseURL: baseURL,
			})
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "", "AI provider: google, groq, ollama, custom-openai")
	cmd.Flags().StringVar(&model, "model", "", "Model name (default: provider's default)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (or "+settings.EnvKeyVar+" env var)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Custom API base URL")
	cmd.Flags().StringVar(&langs, "lang", "", "Languages to translate (comma-separated)")
	cmd.Flags().StringVar(&dialects, "dialects", "", "Dialect codes replacing the defaults (comma-separated, e.g. fr-CA,de-AT)")

	_ = cmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"google\tGoogle AI (Gemini) — API key required",
			"groq\tGroq — API key required",
			"ollama\tOllama local server",
			"custom-openai\tCustom OpenAI-compatible endpoint",
		}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

type translateArgs struct {
	langs, dialects                  string
	provider, apiKey, model, baseURL string
}

func runTranslate(a translateArgs) error {
	proj, pf := ensureProject()

	base, err := doExtract(proj)
	if err != nil {
		return err
	}
	if base.Len() == 0 {
		logInfo("Nothing to translate")
		return nil
	}

	// Languages: flag > yaml > interactive prompt (default fr,de).
	langs := splitList(a.langs)
	if len(langs) == 0 && pf != nil {
		langs = pf.Languages
	}
	if len(langs) == 0 {
		langs = promptLanguages()
	}

	// Dialects: flag > yaml > built-in defaults.
	dialectTokens := splitList(a.dialects)
	if len(dialectTokens) == 0 && pf != nil {
		dialectTokens = pf.Dialects
	}
	dialectsFor := config.ResolveDialects(dialectTokens)

	providerID := a.provider
	if providerID == "" && pf != nil {
		providerID = pf.Provider
	}
	if providerID == "" {
		return fmt.Errorf("no provider specified; use --provider (google, groq, ollama, custom-openai)")
	}

	model := a.model
	if model == "" && pf != nil {
		model = pf.Model
	}
	baseURL := a.baseURL
	if baseURL == "" && pf != nil {
		baseURL = pf.BaseURL
	}
	if baseURL == "" {
		baseURL = settings.GetBaseURL(providerID)
	}

	key := settings.ResolveAPIKey(providerID, a.apiKey)
	prov, err := translate.Resolve(providerID, key, model, baseURL)
	if err != nil {
		return err
	}

	orch := &translate.Orchestrator{
		Provider: prov,
		OnLog:    logInfo,
		OnError:  logError,
	}

	ctx := context.Background()
	for _, lang := range langs {
		lang = langmeta.Canonicalize(lang)
		if lang == "" || lang == "en" {
			continue
		}
		dialects := dialectsFor[langmeta.Base(lang)]
		if err := orch.TranslateLanguage(ctx, lang, dialects, base, proj.ResourcePath); err != nil {
			return err
		}
		logSuccess("Wrote %s", relPath(proj.Root, proj.ResourcePath(lang)))
	}

	logSuccess(i18n.T("Translation complete"))
	return nil
}

// promptLanguages asks for a language list on stdin; empty input means
// the fr,de default.
func promptLanguages() []string {
	fmt.Fprintf(os.Stderr, "  Languages to translate (comma-separated) [fr,de]: ")
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		if langs := splitList(scanner.Text()); len(langs) > 0 {
			return langs
		}
	}
	return []string{"fr", "de"}
}

// ---------------------------------------------------------------------------
// auth (provider API keys)
// ---------------------------------------------------------------------------

var keyProviders = map[string]struct {
	name    string
	helpURL string
	example string
}{
	translate.ProviderGoogle: {
		name:    "Google AI Studio",
		helpURL: "https://aistudio.google.com/apikey",
		example: "dev-ui-translate translate --provider google --lang fr",
	},
	translate.ProviderGroq: {
		name:    "Groq Cloud",
		helpURL: "https://console.groq.com/keys",
		example: "dev-ui-translate translate --provider groq --lang fr",
	},
	translate.ProviderCustomOpenAI: {
		name:    "Custom OpenAI",
		helpURL: "",
		example: "dev-ui-translate translate --provider custom-openai --model MODEL --lang fr",
	},
}

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage provider API keys",
		Long:  `Store, inspect, and remove API keys for translation providers.`,
	}
	cmd.AddCommand(newAuthSetCmd(), newAuthShowCmd(), newAuthRemoveCmd())
	return cmd
}

func newAuthSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <provider>",
		Short: "Store an API key for a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID := args[0]
			if _, ok := keyProviders[providerID]; !ok {
				return fmt.Errorf("provider %q does not use stored API keys (valid: google, groq, custom-openai)", providerID)
			}
			if providerID == translate.ProviderCustomOpenAI {
				return authSetCustomOpenAI()
			}
			return authSetAPIKey(providerID)
		},
	}
}

func authSetAPIKey(providerID string) error {
	info := keyProviders[providerID]

	fmt.Fprintf(os.Stderr, "\n%s%s — API Key Setup%s\n", colorBlue, info.name, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintln(os.Stderr)

	if info.helpURL != "" {
		fmt.Fprintf(os.Stderr, "  Get your API key from: %s%s%s\n\n", colorGreen, info.helpURL, colorReset)
	}

	existing := settings.GetAPIKey(providerID)
	if existing != "" {
		fmt.Fprintf(os.Stderr, "  Current key: %s%s%s\n", colorYellow, settings.MaskKey(existing), colorReset)
		fmt.Fprintf(os.Stderr, "  Enter new key to replace, or press Enter to keep: ")
	} else {
		fmt.Fprintf(os.Stderr, "  Enter API key: ")
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return fmt.Errorf("no input received")
	}
	key := strings.TrimSpace(scanner.Text())

	if key == "" {
		if existing != "" {
			logInfo("Keeping existing key")
			return nil
		}
		return fmt.Errorf("no API key provided")
	}

	if err := settings.SetAPIKey(providerID, key); err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}

	logSuccess("%s API key saved!", info.name)
	fmt.Fprintf(os.Stderr, "\n  You can now use: %s\n\n", info.example)
	return nil
}

func authSetCustomOpenAI() error {
	fmt.Fprintf(os.Stderr, "\n%sCustom OpenAI-Compatible Endpoint%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintln(os.Stderr)

	scanner := bufio.NewScanner(os.Stdin)

	existingKey := settings.GetAPIKey(translate.ProviderCustomOpenAI)
	existingURL := settings.GetBaseURL(translate.ProviderCustomOpenAI)

	if existingURL != "" {
		fmt.Fprintf(os.Stderr, "  Current endpoint: %s%s%s\n", colorYellow, existingURL, colorReset)
		fmt.Fprintf(os.Stderr, "  Enter new endpoint URL, or press Enter to keep: ")
	} else {
		fmt.Fprintf(os.Stderr, "  Enter endpoint URL (e.g., https://api.example.com/v1): ")
	}
	if !scanner.Scan() {
		return fmt.Errorf("no input received")
	}
	baseURL := strings.TrimSpace(scanner.Text())
	if baseURL == "" {
		baseURL = existingURL
	}
	if baseURL == "" {
		return fmt.Errorf("endpoint URL is required")
	}

	if existingKey != "" {
		fmt.Fprintf(os.Stderr, "  Current key: %s%s%s\n", colorYellow, settings.MaskKey(existingKey), colorReset)
		fmt.Fprintf(os.Stderr, "  Enter new API key, or press Enter to keep: ")
	} else {
		fmt.Fprintf(os.Stderr, "  Enter API key (or press Enter if not required): ")
	}
	if !scanner.Scan() {
		return fmt.Errorf("no input received")
	}
	apiKey := strings.TrimSpace(scanner.Text())
	if apiKey == "" {
		apiKey = existingKey
	}

	if err := settings.SetAPIKeyWithBaseURL(translate.ProviderCustomOpenAI, apiKey, baseURL); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}

	logSuccess("Custom OpenAI endpoint saved!")
	return nil
}

func newAuthShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stored API keys (masked)",
		Run: func(cmd *cobra.Command, args []string) {
			store := settings.Load()
			if len(store) == 0 {
				logInfo("No stored credentials (%s)", settings.FilePath())
				return
			}

			fmt.Fprintf(os.Stderr, "\n%sStored credentials%s  (%s)\n", colorBlue, colorReset, settings.FilePath())
			fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
			for _, providerID := range sortedKeys(store) {
				info := store[providerID]
				line := fmt.Sprintf("  %-15s %s", providerID, settings.MaskKey(info.Key))
				if info.BaseURL != "" {
					line += "  " + info.BaseURL
				}
				fmt.Fprintln(os.Stderr, line)
			}
			fmt.Fprintln(os.Stderr)
		},
	}
}

func newAuthRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <provider>",
		Short: "Remove a stored API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := settings.Remove(args[0]); err != nil {
				return err
			}
			logSuccess("Removed credentials for %s", args[0])
			return nil
		},
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// relPath renders path relative to root for log lines, falling back to
// the absolute path.
func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func sortedKeys(store settings.Store) []string {
	keys := make([]string, 0, len(store))
	for k := range store {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
