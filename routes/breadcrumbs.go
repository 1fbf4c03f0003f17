/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

// BreadcrumbItem represents a single breadcrumb navigation item
type BreadcrumbItem struct {
	Name      string
	URL       string
	IsCurrent bool
}

func entriesBreadcrumb(isCurrent bool) BreadcrumbItem {
	return BreadcrumbItem{Name: "Entries", URL: "/entries", IsCurrent: isCurrent}
}

func biomarkersBreadcrumb(isCurrent bool) BreadcrumbItem {
	return BreadcrumbItem{Name: "Biomarkers", URL: "/biomarkers", IsCurrent: isCurrent}
}

func biomarkerBreadcrumb(code, name string, isCurrent bool) BreadcrumbItem {
	return BreadcrumbItem{Name: name, URL: "/biomarkers/" + code, IsCurrent: isCurrent}
}
