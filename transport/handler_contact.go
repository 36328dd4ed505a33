package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/contacts-api/constant"
	"github.com/muhammadheryan/contacts-api/model"
	"github.com/muhammadheryan/contacts-api/utils/errors"
	validatorx "github.com/muhammadheryan/contacts-api/utils/validator"
)

// contactID extracts and parses the contact id path parameter. A value that
// is not a positive integer is malformed, which is distinct from a
// well-formed id that matches no record.
func contactID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidID)
	}
	return id, nil
}

// ListContacts handler
// @Summary List contacts
// @Tags Contacts
// @Produce json
// @Success 200 {array} model.ContactEntity
// @Failure 500 {object} transport.errorResponse
// @Router /api/contacts [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ContactApp.ListContacts(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetContact handler
// @Summary Get contact by id
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.ContactEntity
// @Failure 404 {object} transport.errorResponse
// @Router /api/contacts/{id} [get]
func (s *RestHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := contactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ContactApp.GetContact(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateContact handler
// @Summary Create contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact"
// @Success 201 {object} model.ContactEntity
// @Failure 400 {object} transport.errorResponse
// @Router /api/contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.CreateContact(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateContact handler
// @Summary Update contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body model.ContactRequest true "Contact"
// @Success 200 {object} model.ContactEntity
// @Failure 404 {object} transport.errorResponse
// @Router /api/contacts/{id} [put]
func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := contactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ContactApp.UpdateContact(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteContact handler
// @Summary Delete contact
// @Tags Contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} transport.errorResponse
// @Router /api/contacts/{id} [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := contactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.ContactApp.DeleteContact(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.MessageResponse{Message: "Contact deleted"})
}

// UpdateFavorite handler
// @Summary Update contact favorite status
// @Tags Contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body model.UpdateFavoriteRequest true "Favorite"
// @Success 200 {object} model.ContactEntity
// @Failure 400 {object} transport.errorResponse
// @Failure 404 {object} transport.errorResponse
// @Router /api/contacts/{id}/favorite [patch]
func (s *RestHandler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := contactID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "missing field favorite"))
		return
	}

	if req.Favorite == nil {
		writeError(w, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "missing field favorite"))
		return
	}

	res, err := s.ContactApp.UpdateFavorite(ctx, id, *req.Favorite)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
