package impl

import (
	"io"
	"log/slog"

	"contactbook/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(requireVerification bool, tmpDir string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:          10,
			RequireVerification: requireVerification,
		},
		Avatar: &config.AvatarConfig{
			TmpDir: tmpDir,
			Size:   250,
		},
	}
}
