package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode        = 0
	ServiceErrCode     = 10001
	ParamErrCode       = 10002
	RecordNotFoundCode = 10003
	OwnershipErrCode   = 10004
	ConflictErrCode    = 10005
	AuthorizationCode  = 10006
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success              = NewErrNo(SuccessCode, "Success")
	ServiceErr           = NewErrNo(ServiceErrCode, "Service internal error")
	ParamErr             = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	RecordNotFoundErr    = NewErrNo(RecordNotFoundCode, "Record not found")
	OwnershipErr         = NewErrNo(OwnershipErrCode, "Operation is only allowed for the owner")
	ConflictErr          = NewErrNo(ConflictErrCode, "Operation conflicts with current state")
	AuthorizationFailErr = NewErrNo(AuthorizationCode, "Authorization failed")
)

// ConvertErr maps any error onto an ErrNo. Non-ErrNo errors come from the
// store or a collaborator and surface as ServiceErr with a generic message,
// internal detail stays in the logs.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}
