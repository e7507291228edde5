package adapters

import (
	"maps"

	"github.com/benefique/cfo-times/pkg/models/api"
	"github.com/benefique/cfo-times/pkg/models/domain"
)

func MapReportDomainToApi(r *domain.Report) api.Report {
	out := api.Report{
		Title:    r.Title,
		Edition:  r.Edition,
		Period:   api.TimePeriod(r.Period),
		Sections: make([]api.ReportSection, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		out.Sections = append(out.Sections, MapReportSectionDomainToApi(s))
	}
	return out
}

func MapReportSectionDomainToApi(s domain.ReportSection) api.ReportSection {
	section := api.ReportSection{
		Key:      s.Key,
		Title:    s.Title,
		Subtitle: s.Subtitle,
		Summary:  maps.Clone(s.Summary),
		Details:  make([]api.ReportDetail, 0, len(s.Details)),
	}
	for _, d := range s.Details {
		section.Details = append(section.Details, api.ReportDetail{
			Name:        d.Name,
			Value:       d.Value,
			Unit:        d.Unit,
			Description: d.Description,
			Status:      d.Status.String(),
		})
	}
	return section
}
