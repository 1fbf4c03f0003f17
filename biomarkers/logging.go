/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarkers

import "github.com/humaidq/biolog/logging"

var logger = logging.Logger(logging.SourceCatalog)
