package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/orthanc-tools/embedres/internal/catalog"
	"github.com/orthanc-tools/embedres/internal/config"
	"github.com/orthanc-tools/embedres/internal/generator"
	"github.com/orthanc-tools/embedres/pkg/log"
	"github.com/orthanc-tools/embedres/version"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag names; they double as viper keys.
const (
	flagConfig          = "config"
	flagNamespace       = "namespace"
	flagNoUpcaseCheck   = "no-upcase-check"
	flagSystemException = "system-exception"
	flagExceptionHeader = "exception-header"
	flagIgnore          = "ignore"
	flagAtomic          = "atomic"
	flagLock            = "lock"
	flagLockTimeout     = "lock-timeout"
)

// resourceOptions are the inputs shared by generate and list. Zero values
// mean "not given", letting a manifest or the defaults decide.
type resourceOptions struct {
	ConfigPath      string
	Namespace       string
	NoUpcaseCheck   bool
	SystemException bool
	ExceptionHeader string
	Ignore          []string
	Atomic          bool
	Lock            bool
	LockTimeout     time.Duration
	// LogOverride is set when logging was configured by flag or environment,
	// in which case the manifest's logging section is ignored.
	LogOverride bool
}

// plan is everything needed to build the catalog and emit it.
type plan struct {
	Target    string
	Resources []config.Resource
	Catalog   catalog.Options
	Generator generator.Options
}

func addResourceFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(flagConfig, "", "Read target and resources from an embedres manifest (YAML)")
	f.String(flagNamespace, "", "C++ namespace of the generated code (default \""+generator.DefaultNamespace+"\")")
	f.Bool(flagNoUpcaseCheck, false, "Allow upper-case letters in paths inside directory resources")
	f.Bool(flagSystemException, false, "Throw ::std::runtime_error instead of OrthancException")
	f.String(flagExceptionHeader, "", "Header declaring OrthancException (default \""+generator.DefaultExceptionHeader+"\")")
	f.StringSlice(flagIgnore, nil, "Extra gitignore-style pattern excluded from directory resources (repeatable)")
}

// bindResourceFlags is run as PreRunE so that only the executing command's
// flags are bound to the shared viper keys.
func bindResourceFlags(cmd *cobra.Command, args []string) error {
	return viper.BindPFlags(cmd.Flags())
}

func resourceOptionsFromViper() resourceOptions {
	return resourceOptions{
		ConfigPath:      viper.GetString(flagConfig),
		Namespace:       viper.GetString(flagNamespace),
		NoUpcaseCheck:   viper.GetBool(flagNoUpcaseCheck),
		SystemException: viper.GetBool(flagSystemException),
		ExceptionHeader: viper.GetString(flagExceptionHeader),
		Ignore:          viper.GetStringSlice(flagIgnore),
		Atomic:          viper.GetBool(flagAtomic),
		Lock:            viper.GetBool(flagLock),
		LockTimeout:     viper.GetDuration(flagLockTimeout),
		LogOverride:     viper.IsSet(keyLogLevel) || viper.IsSet(keyLogFile),
	}
}

// buildPlan merges the manifest (if any), the flags and the positional
// arguments. Positional arguments are [<target>] followed by name/path pairs;
// the target is only expected when withTarget is set.
func buildPlan(opts resourceOptions, args []string, withTarget bool) (*plan, error) {
	p := &plan{
		Catalog: catalog.Options{CheckCase: !opts.NoUpcaseCheck},
		Generator: generator.Options{
			Namespace:   opts.Namespace,
			Atomic:      opts.Atomic,
			Lock:        opts.Lock,
			LockTimeout: opts.LockTimeout,
		},
	}
	patterns := append([]string(nil), opts.Ignore...)
	systemException := opts.SystemException
	exceptionHeader := opts.ExceptionHeader
	var custom *config.ExceptionsConfig

	if opts.ConfigPath != "" {
		cfg, err := config.Load(opts.ConfigPath, version.Version)
		if err != nil {
			return nil, err
		}
		if !opts.LogOverride {
			if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
				return nil, err
			}
		}

		p.Target = cfg.Target
		p.Resources = append(p.Resources, cfg.Resources...)
		if p.Generator.Namespace == "" {
			p.Generator.Namespace = cfg.Namespace
		}
		if !*cfg.UpcaseCheck {
			p.Catalog.CheckCase = false
		}
		systemException = systemException || cfg.SystemException
		if exceptionHeader == "" {
			exceptionHeader = cfg.Exceptions.Header
		}
		if cfg.Exceptions.Custom() {
			custom = &cfg.Exceptions
		}
		patterns = append(cfg.Ignore, patterns...)
		p.Generator.Atomic = p.Generator.Atomic || cfg.Output.Atomic
		p.Generator.Lock = p.Generator.Lock || cfg.Output.Lock
		if p.Generator.LockTimeout == 0 {
			p.Generator.LockTimeout = cfg.LockTimeout()
		}
		slog.Debug("manifest loaded", "path", opts.ConfigPath, "resources", len(cfg.Resources))
	}

	if withTarget && len(args) > 0 {
		p.Target = args[0]
		args = args[1:]
	}
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("resources must be given as <ResourceName> <SourcePath> pairs")
	}
	for i := 0; i < len(args); i += 2 {
		p.Resources = append(p.Resources, config.Resource{Name: args[i], Path: args[i+1]})
	}
	if withTarget && p.Target == "" {
		return nil, fmt.Errorf("missing <targetBasePath>")
	}

	if p.Generator.Namespace == "" {
		p.Generator.Namespace = generator.DefaultNamespace
	}
	switch {
	case systemException && custom != nil:
		return nil, fmt.Errorf("--%s conflicts with the manifest's custom exceptions", flagSystemException)
	case systemException:
		p.Generator.Policy = generator.SystemPolicy()
	case custom != nil:
		include := custom.Include
		if include == "" && exceptionHeader != "" {
			include = fmt.Sprintf(`#include "%s"`, exceptionHeader)
		}
		p.Generator.Policy = generator.ErrorPolicy{
			Include:        include,
			OutOfRange:     custom.OutOfRange,
			InexistentPath: custom.InexistentPath,
		}
	default:
		p.Generator.Policy = generator.DefaultPolicy(exceptionHeader)
	}

	if len(patterns) > 0 {
		p.Catalog.Ignore = ignore.CompileIgnoreLines(patterns...)
	}
	return p, nil
}

// buildCatalog registers every resource of p, in order, from fsys.
func buildCatalog(fsys afero.Fs, p *plan) (*catalog.Catalog, error) {
	b := catalog.NewBuilder(fsys, p.Catalog)
	for _, res := range p.Resources {
		if err := b.AddResource(res.Name, res.Path); err != nil {
			return nil, err
		}
	}
	return b.Catalog(), nil
}
