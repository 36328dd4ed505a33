package contact_test

import (
	"context"
	"errors"
	"testing"

	appcontact "github.com/muhammadheryan/contacts-api/application/contact"
	"github.com/muhammadheryan/contacts-api/constant"
	contactmocks "github.com/muhammadheryan/contacts-api/mocks/repository/contact"
	"github.com/muhammadheryan/contacts-api/model"
	cerr "github.com/muhammadheryan/contacts-api/utils/errors"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestContactApp_ListContacts(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: returns all contacts",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything).
					Return([]model.ContactEntity{
						{ID: 1, Name: "Allen Raymond", Email: "nulla.ante@vestibul.co.uk", Phone: "(992) 914-3792"},
						{ID: 2, Name: "Chaim Lewis", Email: "dui.in@egetlacus.ca", Phone: "(294) 840-6685"},
					}, nil).
					Once()
			},
			want: 2,
		},
		{
			name:   "success: empty list",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything).
					Return([]model.ContactEntity{}, nil).
					Once()
			},
			want: 0,
		},
		{
			name:   "error: repository failure",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.ListContacts(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListContacts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if len(got) != tt.want {
				t.Fatalf("ListContacts() returned %d contacts, want %d", len(got), tt.want)
			}
		})
	}
}

func TestContactApp_GetContact(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: contact found",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     1,
			mockCall: func(f fields) {
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(&model.ContactEntity{ID: 1, Name: "Allen Raymond"}, nil).
					Once()
			},
		},
		{
			name:   "error: contact missing",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     99,
			mockCall: func(f fields) {
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(99)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: repository failure",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     1,
			mockCall: func(f fields) {
				f.contactRepo.
					On("GetByID", mock.Anything, uint64(1)).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.GetContact(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID != tt.id {
				t.Fatalf("GetContact() id = %d, want %d", got.ID, tt.id)
			}
		})
	}
}

func TestContactApp_CreateContact(t *testing.T) {
	contactRepo := contactmocks.NewContactRepository(t)
	contactRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ContactEntity) bool {
			// New contacts always start off the favorites list.
			return ent.Name == "Allen Raymond" && !ent.Favorite
		})).
		Return(&model.ContactEntity{
			ID:       1,
			Name:     "Allen Raymond",
			Email:    "nulla.ante@vestibul.co.uk",
			Phone:    "(992) 914-3792",
			Favorite: false,
		}, nil).
		Once()

	app := appcontact.NewContactApp(contactRepo)
	got, err := app.CreateContact(context.Background(), &model.ContactRequest{
		Name:  "Allen Raymond",
		Email: "nulla.ante@vestibul.co.uk",
		Phone: "(992) 914-3792",
	})
	if err != nil {
		t.Fatalf("CreateContact() error = %v", err)
	}
	if got.ID == 0 {
		t.Fatal("CreateContact() should assign an id")
	}
	if got.Favorite {
		t.Fatal("CreateContact() favorite should default to false")
	}
}

func TestContactApp_UpdateContact(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		req      *model.ContactRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: update existing contact",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     1,
			req:    &model.ContactRequest{Name: "Updated Name", Email: "updated@example.com"},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Update", mock.Anything, uint64(1), mock.MatchedBy(func(ent *model.ContactEntity) bool {
						return ent.Name == "Updated Name"
					})).
					Return(&model.ContactEntity{ID: 1, Name: "Updated Name", Email: "updated@example.com"}, nil).
					Once()
			},
		},
		{
			name:   "error: contact missing",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     99,
			req:    &model.ContactRequest{Name: "Updated Name"},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Update", mock.Anything, uint64(99), mock.AnythingOfType("*model.ContactEntity")).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.UpdateContact(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Name != tt.req.Name {
				t.Fatalf("UpdateContact() name = %s, want %s", got.Name, tt.req.Name)
			}
		})
	}
}

func TestContactApp_DeleteContact(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: delete existing contact",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     1,
			mockCall: func(f fields) {
				f.contactRepo.
					On("Delete", mock.Anything, uint64(1)).
					Return(true, nil).
					Once()
			},
		},
		{
			name:   "error: contact missing",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     99,
			mockCall: func(f fields) {
				f.contactRepo.
					On("Delete", mock.Anything, uint64(99)).
					Return(false, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: repository failure",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:     1,
			mockCall: func(f fields) {
				f.contactRepo.
					On("Delete", mock.Anything, uint64(1)).
					Return(false, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			err := app.DeleteContact(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestContactApp_UpdateFavorite(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		id       uint64
		favorite bool
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: set favorite",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:       1,
			favorite: true,
			mockCall: func(f fields) {
				f.contactRepo.
					On("UpdateFavorite", mock.Anything, uint64(1), true).
					Return(&model.ContactEntity{ID: 1, Name: "Allen Raymond", Favorite: true}, nil).
					Once()
			},
		},
		{
			name:     "success: setting the same value again is a no-op",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:       1,
			favorite: true,
			mockCall: func(f fields) {
				f.contactRepo.
					On("UpdateFavorite", mock.Anything, uint64(1), true).
					Return(&model.ContactEntity{ID: 1, Name: "Allen Raymond", Favorite: true}, nil).
					Once()
			},
		},
		{
			name:     "error: contact missing",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			id:       99,
			favorite: false,
			mockCall: func(f fields) {
				f.contactRepo.
					On("UpdateFavorite", mock.Anything, uint64(99), false).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockCall(tt.fields)
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.UpdateFavorite(context.Background(), tt.id, tt.favorite)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateFavorite() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Favorite != tt.favorite {
				t.Fatalf("UpdateFavorite() favorite = %v, want %v", got.Favorite, tt.favorite)
			}
		})
	}
}
