package exceptions

import (
	"fmt"
	"simrs-service/internal/pkg/constvars"
)

var (
	ErrClaimNotFound = func(claimNumber string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusNotFound, constvars.ErrClientClaimNotFound, constvars.ErrDevClaimNotFound+": "+claimNumber)
		customErr.Kind = KindRepository
		return customErr
	}
	ErrClaimDuplicateSEP = func(sepNumber, locale string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusConflict, constvars.LocalizedMessage(constvars.MsgTagDuplicateSEP, locale), constvars.ErrDevClaimDuplicateSEP+": "+sepNumber)
		customErr.Kind = KindDuplicateReference
		customErr.Code = constvars.MsgTagDuplicateSEP
		return customErr
	}
	ErrClaimInvalidTransition = func(from, to, locale string) *CustomError {
		clientMessage := fmt.Sprintf(constvars.LocalizedMessage(constvars.MsgTagInvalidTransition, locale), from, to)
		devMessage := fmt.Sprintf("%s: %s -> %s", constvars.ErrDevClaimInvalidTransition, from, to)
		customErr := WrapWithoutError(constvars.StatusUnprocessableEntity, clientMessage, devMessage)
		customErr.Kind = KindInvalidTransition
		customErr.Code = constvars.MsgTagInvalidTransition
		return customErr
	}
	ErrClaimBusinessRule = func(msgTag, locale string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusUnprocessableEntity, constvars.LocalizedMessage(msgTag, locale), constvars.ErrDevClaimBusinessRule+": "+msgTag)
		customErr.Kind = KindBusinessRule
		customErr.Code = msgTag
		return customErr
	}
	ErrClaimLockNotAcquired = func(claimNumber string) *CustomError {
		customErr := WrapWithoutError(constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, constvars.ErrDevClaimLockNotAcquired+": "+claimNumber)
		customErr.Kind = KindBusinessRule
		return customErr
	}
	ErrSequenceIncrement = func(err error) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSequenceIncrementFailed)
		customErr.Kind = KindRepository
		return customErr
	}
)
