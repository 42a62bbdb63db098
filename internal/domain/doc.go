// Package domain models acute heat-stress risk for Mugil cephalus at a
// marine coordinate: the Synergistic Thermal & Energetic Framework (STEF).
//
// # Temperature Sources
//
// Sea-surface temperature comes from one of two sources, recorded on every
// reading as provenance:
//
//	satellite-live    NOAA ERDDAP griddap query for the grid cell nearest
//	                  the coordinate, reported in Kelvin and converted to
//	                  Celsius, rounded to one decimal.
//	geographic-model  Latitude/season estimate used whenever the live source
//	                  is disabled or fails:
//	                    base     = 28·cos(|lat|) + 5
//	                    seasonal = 3·sin((month − 3)·π/6)
//	                    temp     = clamp(base + seasonal, 10, 36)
//
// # Climate Scenarios
//
// IPCC projection scenarios are a closed enumeration, each carrying a fixed
// temperature shift applied on top of the resolved reading:
//
//	baseline   +0.0°C (present day)
//	ssp1-2.6   +1.5°C by 2050
//	ssp5-8.5   +3.2°C by 2050
//
// # Risk Model
//
// The lethal threshold is the species' thermal optimum ceiling of 31.5°C,
// narrowed by nutritional stress: T_lethal = 31.5 − 1.07·(1 − NI), where the
// nutritional index NI is 1.0 for a well-fed animal and 0.0 for severe
// starvation. Risk tiers partition the temperature domain, first match wins:
//
//	LETHAL     T ≥ T_lethal           score 100
//	CRITICAL   T ≥ T_lethal − 2       score 75–100
//	HIGH_RISK  T ≥ 25                 score 50–75
//	STABLE     otherwise              score 0–50
//
// Metabolic state is derived alongside: SMR = 72.4·e^(0.0567·T) in mg O₂ per
// kg per hour, and the thermal sensitivity coefficient Q10 is 2.45 at or
// above 25°C, 2.07 below.
//
// # Population Projection
//
// The 25-year trajectory from 2026 is exponential decay with rate
// 0.05 + score/500; the collapse year is the first year the relative
// population drops below 50%.
package domain
