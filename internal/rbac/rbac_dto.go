package rbac

import "github.com/HorizonColonel/orient-launch-pad/internal/domain"

type EnforceResponse = domain.EnforceResponse

type PermissionsResponse = domain.PermissionsResponse
