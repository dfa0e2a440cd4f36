package ports

import "github.com/satishgoda/OpenAssetIO/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
