package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"staffhub_backend/internals/features/team/members/dto"
	helper "staffhub_backend/internals/helpers"
)

/* =======================================================
   IMPORT EXCEL
   Format kolom (baris pertama = header, dilewati):
   Nama | Email | Phone | Position | Department | Skills | Admin
   Skills dipisah titik koma; Admin = ya/true/1.
======================================================= */

func (ctrl *TeamMemberController) ImportTeamMembersExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File Excel wajib diupload di field 'file'")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file")
	}
	defer src.Close()

	book, err := excelize.OpenReader(src)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File bukan Excel (.xlsx) yang valid")
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	rows, err := book.GetRows(sheet)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca sheet pertama")
	}
	if len(rows) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak berisi data member")
	}

	reqs := make([]dto.CreateTeamMemberRequest, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(cell(row, 0)) == "" {
			continue
		}
		reqs = append(reqs, dto.CreateTeamMemberRequest{
			TeamMemberFullName:   strings.TrimSpace(cell(row, 0)),
			TeamMemberEmail:      strings.TrimSpace(cell(row, 1)),
			TeamMemberPhone:      optCell(row, 2),
			TeamMemberPosition:   optCell(row, 3),
			TeamMemberDepartment: optCell(row, 4),
			TeamMemberSkills:     splitSkills(cell(row, 5)),
			TeamMemberIsAdmin:    parseBoolCell(cell(row, 6)),
		})
	}
	if len(reqs) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada baris member yang bisa diproses")
	}

	resp := dto.BulkProvisionResponse{
		Total:   len(reqs),
		Results: make([]dto.BulkProvisionRowResult, 0, len(reqs)),
	}
	for i, req := range reqs {
		res := dto.BulkProvisionRowResult{
			Row:   i + 2, // baris Excel asli, header = baris 1
			Email: strings.ToLower(strings.TrimSpace(req.TeamMemberEmail)),
		}
		if err := ctrl.Validate.Struct(req); err != nil {
			res.Error = "data baris tidak valid"
			resp.Failed++
			resp.Results = append(resp.Results, res)
			continue
		}
		member, err := ctrl.provisionOne(req)
		if err != nil {
			res.Error = err.Error()
			resp.Failed++
		} else {
			res.TeamMemberID = &member.TeamMemberID
			resp.Created++
		}
		resp.Results = append(resp.Results, res)
	}

	return helper.JsonOK(c, "Import selesai", resp)
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func optCell(row []string, i int) *string {
	v := strings.TrimSpace(cell(row, i))
	if v == "" {
		return nil
	}
	return &v
}

func splitSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ";") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseBoolCell(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ya", "yes", "true", "1":
		return true
	}
	return false
}
