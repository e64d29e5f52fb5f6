// File: internal/handler/admin/contacts.go
package admin

import (
	"context"
	"errors"
	"net/http"

	"pmco-site/internal/api"
	"pmco-site/internal/database"
	"pmco-site/internal/model"
	"pmco-site/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listContacts        = store.ListContacts
	updateContactRemark = store.UpdateContactRemark
	deleteContact       = store.DeleteContact
)

// Contacts 名單只開放列表與刪除；新增只能來自公開表單，
// 更新僅限備註欄位（見 UpdateRemarkHandler）。
var Contacts = Resource[struct{}, model.Contact]{
	Name:   "contact",
	Plural: "contacts",
	List: func(ctx context.Context, db database.DB) ([]model.Contact, error) {
		return listContacts(ctx, db)
	},
	Delete: func(ctx context.Context, db database.DB, id int) error {
		return deleteContact(ctx, db, id)
	},
}

// UpdateRemarkHandler 僅更新名單的處理備註
// @Summary     更新名單備註
// @Description 只改 actionRemark，其餘欄位不動
// @Tags        admin-contacts
// @Accept      json
// @Produce     json
// @Param       id   path int             true "名單 ID"
// @Param       body body api.RemarkRequest true "備註內容"
// @Success     200  {object} model.Contact
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/contacts/{id} [put]
func UpdateRemarkHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := Contacts.paramID(c)
		if !ok {
			return nil
		}

		var req api.RemarkRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid update data"})
		}

		contact, err := updateContactRemark(c.Request().Context(), db, id, req.ActionRemark)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Contact not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update contact"})
		}
		return c.JSON(http.StatusOK, contact)
	}
}
