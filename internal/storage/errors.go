package storage

import "github.com/BruksfildServices01/kezya-clinic/internal/httperr"

var ErrDisabled = httperr.ErrBusiness("storage_disabled")
