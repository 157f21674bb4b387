// Package pipeline composes the one-pass Transform→Validate flow per entity
// kind. The returned Result is authoritative gating: callers must not hand a
// record to the persistence layer unless IsValid is true.
package pipeline

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/paramvora-homewiz/formsync/models"
	"github.com/paramvora-homewiz/formsync/transform"
	"github.com/paramvora-homewiz/formsync/utils"
	"github.com/paramvora-homewiz/formsync/validate"
)

// Entity kinds accepted by Process.
const (
	KindOperator = "operator"
	KindBuilding = "building"
	KindRoom     = "room"
	KindTenant   = "tenant"
	KindLead     = "lead"
)

func logOutcome(kind string, res validate.Result) {
	utils.Logger.WithFields(logrus.Fields{
		"trace_id": uuid.NewString(),
		"entity":   kind,
		"valid":    res.IsValid,
		"missing":  len(res.MissingRequired),
		"errors":   len(res.Errors),
	}).Debug("form record processed")
}

func Operator(raw transform.RawRecord) (models.Operator, validate.Result) {
	rec := transform.Operator(raw)
	res := validate.Operator(rec)
	logOutcome(KindOperator, res)
	return rec, res
}

func Building(raw transform.RawRecord) (models.Building, validate.Result) {
	rec := transform.Building(raw)
	res := validate.Building(rec)
	logOutcome(KindBuilding, res)
	return rec, res
}

func Room(raw transform.RawRecord) (models.Room, validate.Result) {
	rec := transform.Room(raw)
	res := validate.Room(rec)
	logOutcome(KindRoom, res)
	return rec, res
}

func Tenant(raw transform.RawRecord) (models.Tenant, validate.Result) {
	rec := transform.Tenant(raw)
	res := validate.Tenant(rec)
	logOutcome(KindTenant, res)
	return rec, res
}

func Lead(raw transform.RawRecord) (models.Lead, validate.Result) {
	rec := transform.Lead(raw)
	res := validate.Lead(rec)
	logOutcome(KindLead, res)
	return rec, res
}

// Process dispatches by entity kind for callers that work with dynamic
// input, such as the CLI. The record is returned as any; typed callers
// should use the per-entity functions.
func Process(kind string, raw transform.RawRecord) (any, validate.Result, error) {
	switch kind {
	case KindOperator:
		rec, res := Operator(raw)
		return rec, res, nil
	case KindBuilding:
		rec, res := Building(raw)
		return rec, res, nil
	case KindRoom:
		rec, res := Room(raw)
		return rec, res, nil
	case KindTenant:
		rec, res := Tenant(raw)
		return rec, res, nil
	case KindLead:
		rec, res := Lead(raw)
		return rec, res, nil
	default:
		return nil, validate.Result{}, errors.Errorf("unknown entity kind %q", kind)
	}
}
