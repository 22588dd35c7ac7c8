package utils

import (
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
	"strings"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	pageSizeStr := r.URL.Query().Get(constvars.URLQueryParamPageSize)

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = constvars.AppDefaultPageSize
	}
	if pageSize > constvars.AppMaxPageSize {
		pageSize = constvars.AppMaxPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func queryBool(r *http.Request, key string) bool {
	value, err := strconv.ParseBool(queryValue(r, key))
	return err == nil && value
}

func BuildPatientQuery(r *http.Request) *requests.PatientQuery {
	return &requests.PatientQuery{
		RegistrationType: queryValue(r, constvars.URLQueryParamRegistrationType),
		Status:           queryValue(r, constvars.URLQueryParamStatus),
		Search:           queryValue(r, constvars.URLQueryParamSearch),
		Pagination:       *BuildPaginationRequest(r),
	}
}

func BuildWardQuery(r *http.Request) *requests.WardQuery {
	return &requests.WardQuery{
		WardType:       queryValue(r, constvars.URLQueryParamWardType),
		Status:         queryValue(r, constvars.URLQueryParamStatus),
		Specialization: queryValue(r, constvars.URLQueryParamSpecialization),
		OnlyAvailable:  queryBool(r, constvars.URLQueryParamAvailable),
		Pagination:     *BuildPaginationRequest(r),
	}
}

func BuildAdmissionQuery(r *http.Request) *requests.AdmissionQuery {
	return &requests.AdmissionQuery{
		PatientID:  queryValue(r, constvars.URLQueryParamPatientID),
		WardID:     queryValue(r, constvars.URLQueryParamWardID),
		Status:     queryValue(r, constvars.URLQueryParamStatus),
		Pagination: *BuildPaginationRequest(r),
	}
}

func BuildLabTestQuery(r *http.Request) *requests.LabTestQuery {
	return &requests.LabTestQuery{
		TestType:        queryValue(r, constvars.URLQueryParamTestType),
		Search:          queryValue(r, constvars.URLQueryParamSearch),
		IncludeInactive: queryBool(r, constvars.URLQueryParamIncludeInactive),
		Pagination:      *BuildPaginationRequest(r),
	}
}

func BuildTestRegistrationQuery(r *http.Request) *requests.TestRegistrationQuery {
	return &requests.TestRegistrationQuery{
		PatientID:  queryValue(r, constvars.URLQueryParamPatientID),
		Status:     queryValue(r, constvars.URLQueryParamStatus),
		Priority:   queryValue(r, constvars.URLQueryParamPriority),
		Pagination: *BuildPaginationRequest(r),
	}
}

func BuildAuditLogQuery(r *http.Request) *requests.AuditLogQuery {
	return &requests.AuditLogQuery{
		ResourceType: queryValue(r, constvars.URLQueryParamResourceType),
		ResourceID:   queryValue(r, constvars.URLQueryParamResourceID),
		PatientID:    queryValue(r, constvars.URLQueryParamPatientID),
		Action:       queryValue(r, constvars.URLQueryParamAction),
		Pagination:   *BuildPaginationRequest(r),
	}
}

// GetClientIP prefers the first X-Forwarded-For hop and falls back to RemoteAddr.
func GetClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}
