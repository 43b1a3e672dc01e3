// Package waterprop holds the tabulated temperature-indexed properties of
// water (density, speed of sound, dynamic viscosity) used by fluid.Water,
// reproduced from the Rennels correlation data the original engine shipped
// with, at 2 K resolution from 273.15 K to 373.15 K.
package waterprop

// Temp is the temperature grid [K].
var Temp = buildTemp()

// Rho is density at each Temp entry [kg/m^3].
var Rho = []float64{
	999.84, 999.94, 999.97, 999.94, 999.85, 999.70, 999.50, 999.25, 998.95, 998.60,
	998.21, 997.78, 997.30, 996.79, 996.24, 995.65, 995.03, 994.37, 993.68, 992.96,
	992.21, 991.43, 990.62, 989.79, 988.92, 988.03, 987.12, 986.17, 985.21, 984.22,
	983.20, 982.16, 981.10, 980.02, 978.91, 977.78, 976.63, 975.46, 974.27, 973.05,
	971.82, 970.57, 969.29, 968.00, 966.68, 965.35, 964.00, 962.63, 961.24, 959.83,
	958.40,
}

// Sound is the speed of sound at each Temp entry [m/s].
var Sound = []float64{
	1403, 1413, 1422, 1431, 1439, 1447, 1455, 1462, 1468, 1475,
	1481, 1487, 1492, 1497, 1502, 1507, 1512, 1516, 1520, 1523,
	1527, 1530, 1533, 1536, 1539, 1541, 1543, 1545, 1547, 1549,
	1550, 1552, 1553, 1553, 1554, 1555, 1555, 1555, 1555, 1555,
	1554, 1554, 1553, 1552, 1551, 1550, 1549, 1548, 1546, 1545,
	1543,
}

// Viscosity is the dynamic viscosity at each Temp entry [Pa.s].
var Viscosity = []float64{
	1.793e-3, 1.675e-3, 1.568e-3, 1.472e-3, 1.386e-3, 1.307e-3, 1.235e-3, 1.169e-3, 1.109e-3, 1.053e-3,
	1.002e-3, 9.549e-4, 9.112e-4, 8.706e-4, 8.328e-4, 7.976e-4, 7.648e-4, 7.341e-4, 7.054e-4, 6.784e-4,
	6.531e-4, 6.293e-4, 6.069e-4, 5.858e-4, 5.658e-4, 5.469e-4, 5.291e-4, 5.122e-4, 4.962e-4, 4.809e-4,
	4.665e-4, 4.527e-4, 4.396e-4, 4.272e-4, 4.153e-4, 4.040e-4, 3.932e-4, 3.828e-4, 3.729e-4, 3.635e-4,
	3.544e-4, 3.457e-4, 3.374e-4, 3.295e-4, 3.218e-4, 3.145e-4, 3.074e-4, 3.006e-4, 2.941e-4, 2.878e-4,
	2.818e-4,
}

func buildTemp() []float64 {
	t := make([]float64, 51)
	for i := range t {
		t[i] = 273.15 + float64(i)*2.0
	}
	return t
}
