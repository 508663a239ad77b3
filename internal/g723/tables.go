package g723

import "math"

// Heavy global-read tables for the synthesis pipeline. All of them are
// immutable after package init and safe to read from any number of
// concurrently-running Decoder instances without synchronization. The
// data layout follows the ITU-T G.723.1 reference decoder; see DESIGN.md
// for per-table provenance notes.

// dcLsp holds the DC (quiescent, all-silence) LSP values in Q15, used to
// initialize prevLSP on a fresh decoder and as the spectral reference for
// comfort noise. Values are strictly increasing, as the stability
// invariant requires.
var dcLsp = [LPCOrder]int32{
	0x0c3b, 0x1271, 0x1e0a, 0x2a36, 0x3630,
	0x406f, 0x4d28, 0x56f4, 0x638c, 0x6c46,
}

// lspBand0/1/2 are the three-stage LSP VQ codebooks: 256 entries each,
// contributing coefficients 0-2, 3-5, and 6-9 respectively. Entry 0 of
// each band is the zero vector, which is what a bad frame's forced-zero
// indices select, leaving only the DC prediction term active.
var lspBand0 = [256][3]int32{
	{0, 0, 0},
	{-814, -238, -817},
	{494, 272, -71},
	{-151, -28, -505},
	{-842, -127, 390},
	{142, -861, -821},
	{288, -273, 884},
	{278, -459, 75},
	{160, -854, 189},
	{-249, -77, 734},
	{162, -278, -815},
	{-269, -99, -867},
	{231, -261, 421},
	{-211, -19, 26},
	{-622, -878, -878},
	{-653, 474, 209},
	{-313, 550, 827},
	{-167, 141, 612},
	{-833, 843, 330},
	{-262, -29, 480},
	{-830, 281, 119},
	{-44, -54, 291},
	{-764, 17, -658},
	{118, -725, 305},
	{542, 118, -874},
	{-844, 733, 363},
	{42, 331, -671},
	{471, 588, 864},
	{596, 35, 890},
	{39, 206, 601},
	{-219, 270, -562},
	{-748, -462, 18},
	{-554, 218, -250},
	{-830, -435, -290},
	{734, -539, -843},
	{-146, -352, -544},
	{81, -409, 38},
	{828, 156, -359},
	{-874, 43, -661},
	{-443, -698, 838},
	{-795, -470, 210},
	{704, 538, -365},
	{-558, 199, -185},
	{46, -676, 846},
	{-250, -592, -691},
	{371, 589, 690},
	{-299, 47, 698},
	{607, -365, 353},
	{607, 358, -404},
	{34, 710, 210},
	{-105, 826, 232},
	{-95, -82, -7},
	{526, -354, 756},
	{-813, -469, 491},
	{-753, 652, 658},
	{319, 539, 688},
	{610, 470, -351},
	{736, 439, 125},
	{-291, -698, -865},
	{-301, -188, -255},
	{26, -618, -878},
	{-476, 867, -435},
	{-636, -140, -823},
	{-484, 705, 823},
	{560, 202, -803},
	{-812, -570, -94},
	{860, -128, 409},
	{758, 46, -305},
	{-802, -36, -635},
	{-250, -390, -58},
	{-677, 115, -274},
	{14, 478, -67},
	{505, -59, 806},
	{137, -150, -630},
	{338, 141, -393},
	{-189, 459, -787},
	{265, -872, 212},
	{-874, -740, -558},
	{-485, 409, 389},
	{356, -397, 240},
	{513, 9, -459},
	{0, 558, -526},
	{540, -279, 228},
	{845, -640, 822},
	{611, -581, 542},
	{-679, 531, 4},
	{-895, -270, 332},
	{895, 430, -213},
	{117, -197, 407},
	{-803, 204, -438},
	{-476, -551, 211},
	{421, 11, 415},
	{-350, 683, -803},
	{228, -605, 150},
	{-855, -42, -620},
	{-360, 369, 485},
	{1, -536, 18},
	{-284, 384, 807},
	{-159, -532, 609},
	{-291, -460, -380},
	{220, -405, -4},
	{-466, 751, -48},
	{404, 228, -613},
	{-812, 226, 807},
	{-756, -743, 484},
	{-644, -346, 352},
	{894, 358, -25},
	{594, -798, 51},
	{-773, -47, 212},
	{-482, 52, 684},
	{-739, -254, 259},
	{497, 244, 729},
	{720, -705, 133},
	{274, 655, -373},
	{-26, -792, 835},
	{-251, 416, 673},
	{-555, -225, -700},
	{-599, 816, 448},
	{-137, -404, -621},
	{-684, -198, -701},
	{-423, 576, -14},
	{-518, 125, 659},
	{-669, -72, 264},
	{678, 730, -375},
	{400, -480, 221},
	{327, -97, -531},
	{-676, 201, 221},
	{-119, 196, -246},
	{-893, -456, -198},
	{-629, -198, 29},
	{374, 172, 329},
	{889, 392, 638},
	{-396, 295, 80},
	{-758, -393, -565},
	{-133, 865, -592},
	{-117, -697, -67},
	{-471, -148, -418},
	{-263, 150, 799},
	{889, -39, 578},
	{319, 292, 50},
	{-688, -611, 183},
	{-226, -71, -421},
	{-846, -597, 329},
	{-551, -315, 852},
	{-885, -361, 745},
	{-588, 120, -111},
	{797, -668, 751},
	{714, -232, 860},
	{728, 879, 581},
	{373, -25, -267},
	{-742, 672, 501},
	{374, -749, -714},
	{-514, -197, 412},
	{-664, 249, 52},
	{-900, -259, 777},
	{206, -577, -337},
	{-316, 726, -695},
	{-228, -654, -132},
	{387, 40, -41},
	{294, 49, -390},
	{-546, 203, -230},
	{314, 476, 325},
	{-569, 87, 123},
	{-375, -829, 368},
	{-776, 583, -691},
	{-161, -544, -150},
	{771, 650, 633},
	{-318, 265, 770},
	{110, 648, 141},
	{669, -505, -825},
	{292, -228, -808},
	{470, -379, -300},
	{-136, 335, 741},
	{-168, -561, 381},
	{-433, 603, 634},
	{-777, -539, -257},
	{771, -860, 844},
	{-422, -49, -338},
	{140, -16, 521},
	{-890, -533, -835},
	{-895, -588, 538},
	{-509, -556, -607},
	{204, -280, -598},
	{-346, -373, -280},
	{386, 51, 267},
	{-16, 701, -230},
	{408, -207, -387},
	{500, -831, 894},
	{327, -137, 762},
	{417, 0, 305},
	{729, 797, 469},
	{-557, -275, 879},
	{543, -705, -692},
	{-627, -255, -709},
	{-295, -781, 463},
	{79, -64, 229},
	{-833, 577, -506},
	{335, -172, -860},
	{738, 14, 446},
	{-368, 263, -197},
	{-345, 397, 694},
	{2, -346, -727},
	{743, 715, 843},
	{880, 123, -503},
	{-79, 277, -782},
	{-332, -888, 162},
	{839, -636, -514},
	{-45, -504, -16},
	{-127, -735, -265},
	{-532, -577, -117},
	{599, -644, 672},
	{879, -79, 452},
	{169, -815, 853},
	{-678, 641, -817},
	{370, 840, 549},
	{127, -87, 483},
	{-801, -13, -164},
	{-753, -309, -97},
	{-509, 899, 20},
	{-397, -653, 151},
	{-363, -57, -38},
	{424, 585, -432},
	{704, 134, -26},
	{-836, -789, 823},
	{248, 291, -303},
	{650, 493, -212},
	{157, -651, 130},
	{-705, -748, -347},
	{-466, 513, 451},
	{-158, 427, 737},
	{-843, -670, -25},
	{834, 112, 567},
	{608, -134, -196},
	{867, 677, -463},
	{278, 22, -139},
	{-589, -577, -249},
	{528, 293, -172},
	{-704, -540, -446},
	{-391, 587, 614},
	{162, -352, 721},
	{-343, -298, 547},
	{-479, -566, -2},
	{-635, -720, -24},
	{-494, -361, 650},
	{330, 269, -332},
	{-875, -309, 681},
	{-872, 742, -454},
	{-777, 827, -178},
	{161, 421, -566},
	{163, -827, 723},
	{-149, 438, -239},
	{727, -570, -260},
	{403, 238, -523},
	{-334, -69, 133},
	{568, -487, 441},
	{-198, 37, 280},
}

var lspBand1 = [256][3]int32{
	{0, 0, 0},
	{27, -648, 255},
	{-880, 23, -736},
	{-382, 367, -312},
	{-194, -627, 71},
	{376, 617, 193},
	{-817, -862, 699},
	{850, 842, 106},
	{841, 497, -633},
	{-200, -412, -462},
	{870, 891, 74},
	{533, 366, -629},
	{-522, 515, -831},
	{879, -222, -229},
	{441, -760, -853},
	{-250, 238, 493},
	{-104, -227, -791},
	{-197, 353, 780},
	{54, -841, -749},
	{703, -367, 725},
	{-696, 634, -704},
	{-322, -621, 334},
	{-386, -287, 20},
	{-454, 0, -785},
	{-107, -453, -504},
	{30, 64, -594},
	{501, -814, 563},
	{-479, -891, 311},
	{94, 530, -20},
	{89, 10, 76},
	{-17, 324, 832},
	{671, 146, 121},
	{-301, 321, 254},
	{-481, -327, 458},
	{570, -682, 752},
	{775, 528, -445},
	{373, 462, -874},
	{21, -824, 397},
	{-781, -897, 701},
	{-201, -404, 2},
	{670, 428, -122},
	{-361, 246, 192},
	{-384, 310, -692},
	{-396, 792, 871},
	{852, -717, -62},
	{118, -274, -153},
	{-473, 793, -319},
	{-110, -500, 887},
	{-545, -275, -55},
	{-91, 822, -107},
	{-219, -348, 478},
	{63, 522, -82},
	{814, -326, -465},
	{54, 232, -812},
	{-68, 398, 559},
	{-809, 675, 527},
	{-325, 453, -563},
	{-532, -358, -65},
	{-163, -89, -261},
	{198, -230, -475},
	{-713, 379, -477},
	{-353, 376, 725},
	{-413, 494, 519},
	{-408, -223, -856},
	{789, -84, -334},
	{146, -676, -316},
	{51, -561, -185},
	{718, -202, 387},
	{-157, -698, -66},
	{349, 126, -864},
	{-888, -28, 319},
	{886, -351, 769},
	{-281, 650, 154},
	{650, 744, 355},
	{254, 891, -745},
	{-877, 511, 438},
	{-404, 454, 649},
	{-668, -552, 790},
	{92, -762, -11},
	{296, -182, 292},
	{800, -644, 132},
	{-381, -874, -888},
	{-841, 52, -571},
	{-95, -29, -189},
	{-612, 697, 852},
	{-161, -477, -359},
	{-868, -382, 148},
	{-738, -313, 865},
	{-429, 655, -321},
	{792, -161, -311},
	{-638, -514, 166},
	{-89, -406, 643},
	{-217, 85, 629},
	{43, 642, 324},
	{202, -847, -193},
	{-714, -242, -673},
	{-279, 474, -532},
	{-226, -193, -794},
	{-240, -532, -598},
	{265, -82, 829},
	{751, -154, 278},
	{-412, -3, -52},
	{-329, -424, -593},
	{-174, -467, -395},
	{786, 105, 280},
	{-262, -184, 191},
	{408, 875, 184},
	{784, 253, -594},
	{-873, -92, -37},
	{-634, 46, -270},
	{245, 546, 727},
	{-600, 650, 372},
	{607, 381, 677},
	{360, 380, -371},
	{260, -488, 849},
	{-659, -164, -832},
	{-851, 339, -800},
	{838, -852, -237},
	{-157, 502, 453},
	{-813, -827, -573},
	{701, -874, 166},
	{-839, -632, 712},
	{465, -143, 211},
	{353, -542, -381},
	{-393, -887, 97},
	{456, 104, -300},
	{-12, 462, -669},
	{193, -418, 764},
	{338, 43, 586},
	{-211, 845, 135},
	{163, 430, 587},
	{168, 866, -300},
	{59, 546, -380},
	{-290, 776, 774},
	{-58, -542, -486},
	{-368, -285, -555},
	{-417, -402, 187},
	{-743, 12, 150},
	{-299, 382, 361},
	{812, -887, -781},
	{891, 631, 85},
	{-530, 811, -674},
	{62, -264, 644},
	{-542, -213, -413},
	{689, 783, 660},
	{3, 716, 801},
	{79, -872, 340},
	{763, 18, 337},
	{896, 797, -585},
	{-405, -680, -577},
	{-543, -851, -632},
	{161, -333, 828},
	{573, 240, 816},
	{394, 822, -325},
	{-862, -618, 96},
	{-515, 277, -215},
	{216, 432, 71},
	{79, -215, -386},
	{681, -505, -188},
	{726, 549, -39},
	{-859, 335, 126},
	{-178, 510, 138},
	{-133, -238, -841},
	{-688, 793, -725},
	{282, -116, -707},
	{708, -899, -319},
	{810, 887, 346},
	{-191, 604, -556},
	{817, -196, -156},
	{-322, 174, 456},
	{-629, -518, 35},
	{897, -238, -370},
	{-592, 172, -376},
	{645, -713, 178},
	{-535, -731, 504},
	{635, 301, -307},
	{-369, 472, -801},
	{-61, -46, 342},
	{700, -246, 890},
	{-387, 584, 245},
	{-273, 504, -673},
	{-256, 306, 289},
	{487, 645, 276},
	{-193, -220, 564},
	{351, -700, -88},
	{-258, -644, 483},
	{192, -157, 97},
	{-876, -790, 725},
	{-385, -163, -709},
	{-144, 890, 761},
	{581, 505, 64},
	{-544, 427, 578},
	{17, -606, 891},
	{-514, 178, 386},
	{-714, 190, -290},
	{310, -247, 74},
	{163, 38, 700},
	{-885, 541, 201},
	{-404, 31, -106},
	{-300, 878, 508},
	{244, -213, -742},
	{-155, 839, -310},
	{790, -4, -555},
	{-875, -430, 118},
	{-358, -224, 861},
	{240, 148, -398},
	{279, -341, 837},
	{-284, -69, 851},
	{-646, -772, 661},
	{-196, -391, -594},
	{803, 649, -118},
	{272, -290, -597},
	{-41, -212, 246},
	{-406, 434, 425},
	{337, -876, -686},
	{-684, -134, -324},
	{-740, 804, -879},
	{-486, -784, -69},
	{-433, -438, 288},
	{765, -887, 268},
	{-695, 421, -87},
	{873, 884, 424},
	{-429, 395, 724},
	{323, 528, -851},
	{-489, 601, 127},
	{305, -298, 343},
	{641, -885, -254},
	{306, -553, -875},
	{460, -514, -345},
	{419, -151, 333},
	{735, -12, -355},
	{479, 894, 147},
	{686, 218, 147},
	{257, -780, -127},
	{-131, 285, 493},
	{656, -773, 400},
	{-369, 718, 552},
	{-716, -883, 59},
	{573, -463, 586},
	{528, -40, -430},
	{32, 623, 574},
	{-784, -583, -823},
	{811, -843, 348},
	{-149, 885, 233},
	{464, 808, -178},
	{-795, -113, -370},
	{-141, -364, -283},
	{-91, 349, 892},
	{181, -13, 276},
	{200, -669, 55},
	{477, 477, -876},
	{818, 695, -109},
	{-864, -288, 625},
	{436, 824, -834},
	{-563, -412, 650},
	{-99, 369, -702},
}

var lspBand2 = [256][4]int32{
	{0, 0, 0, 0},
	{-375, 323, 521, 55},
	{566, -625, 820, -709},
	{365, 108, -187, 450},
	{-40, 338, -690, -748},
	{-900, 3, -305, 556},
	{-565, -124, -722, -769},
	{-320, 157, 665, -406},
	{-564, -418, -335, 397},
	{-140, 34, -219, 111},
	{-828, 509, -811, 493},
	{784, 534, 447, -427},
	{389, -84, -60, -551},
	{92, 895, -221, -360},
	{873, -868, -648, -96},
	{-349, -875, 496, -456},
	{72, 222, -559, 516},
	{767, -370, -121, 73},
	{-405, -765, -142, -122},
	{646, -586, -219, 599},
	{261, -553, 547, 746},
	{453, 838, -508, -812},
	{525, 799, -71, -469},
	{84, -267, 138, 546},
	{459, 453, -527, -612},
	{614, 136, -733, 224},
	{802, 544, 127, -52},
	{-883, 394, 891, -760},
	{-663, -733, -843, -607},
	{231, 744, -814, -542},
	{667, 734, 65, 637},
	{92, 207, 869, 248},
	{353, 898, -169, 458},
	{-444, 678, 261, 733},
	{-307, 420, 680, -479},
	{-821, -54, -281, 227},
	{842, -98, -635, 627},
	{-312, -182, -781, 722},
	{219, 451, 463, 262},
	{803, 668, 307, -278},
	{-628, 121, 367, -51},
	{-429, 284, -540, 46},
	{426, 248, 630, -610},
	{-86, -89, -711, -636},
	{-886, 75, -727, 598},
	{781, 705, 19, -400},
	{-364, -595, 191, -842},
	{-363, -790, -194, 182},
	{854, 414, -830, -595},
	{730, 5, -872, 353},
	{73, -454, 801, 202},
	{682, 231, 830, -391},
	{-777, 244, 623, -896},
	{-106, 805, 27, -6},
	{-381, 843, 92, -140},
	{-561, -512, 598, -874},
	{859, 529, -166, 544},
	{-284, 666, -330, 0},
	{-830, -177, 190, -888},
	{673, -859, 302, 268},
	{890, 865, -336, -473},
	{893, -843, -253, 289},
	{731, 678, -882, -582},
	{-526, -216, 383, -467},
	{-897, 889, 396, -593},
	{118, -352, -496, -788},
	{172, 529, -431, 397},
	{-837, 373, 683, 725},
	{96, 591, -113, 20},
	{334, 297, -567, 749},
	{-77, 352, -75, 331},
	{702, 147, 341, 730},
	{631, 114, 796, -459},
	{336, -363, -825, 157},
	{-7, -433, -252, -625},
	{725, 293, -382, 314},
	{272, -62, -454, 199},
	{70, -150, -463, -85},
	{-397, -560, -260, -259},
	{631, 464, -15, 385},
	{-200, 616, -853, 681},
	{529, -189, 715, -642},
	{-733, -15, -162, 287},
	{-724, 636, 289, 184},
	{-756, -644, 215, -18},
	{303, 483, 389, -248},
	{432, -684, -634, 111},
	{329, -893, 571, -538},
	{-166, -854, 804, 807},
	{814, -686, -850, 748},
	{355, -382, 533, 280},
	{-567, -179, 289, -239},
	{295, -579, 96, 878},
	{-672, -510, 524, 502},
	{-733, -449, -420, 412},
	{694, -311, -177, -741},
	{473, -151, 226, -190},
	{-471, 794, 190, -795},
	{269, -163, -845, 85},
	{368, -485, 819, 94},
	{-506, 451, 839, -833},
	{-872, -338, 348, 684},
	{351, -350, -540, -531},
	{-636, 322, 682, 896},
	{-418, -400, -886, -828},
	{437, -147, 674, 299},
	{-451, 210, 76, 415},
	{-334, -194, -324, 573},
	{232, -520, 594, 116},
	{-221, 90, 209, 568},
	{777, -692, -205, -181},
	{819, -596, -853, 104},
	{419, 675, -729, 613},
	{55, -801, -880, 737},
	{718, 367, 438, 100},
	{17, 748, -126, 602},
	{295, 488, -650, -223},
	{-230, -105, 461, 310},
	{-827, -109, -389, 315},
	{812, 382, 36, -168},
	{-844, -55, 609, 304},
	{325, -231, -481, 778},
	{630, -128, -586, -119},
	{723, 560, 831, -529},
	{-612, 377, 480, -221},
	{830, 93, -273, 208},
	{-184, 898, -291, -16},
	{265, -151, -832, -559},
	{832, -318, -652, -199},
	{-391, 601, 401, 631},
	{-77, 24, -503, 417},
	{-757, -836, 234, 150},
	{872, -351, 383, 60},
	{-309, -327, 110, 510},
	{-231, 89, 864, -620},
	{378, -425, -364, 107},
	{-202, 355, 815, 706},
	{-171, -846, 366, 583},
	{-775, 511, -256, 676},
	{198, 370, -622, 156},
	{766, 541, 771, 284},
	{-9, -353, 245, -259},
	{-569, 817, 351, -641},
	{188, -505, -864, -582},
	{-792, 694, -367, -736},
	{-609, -71, -179, 871},
	{891, 827, -814, -392},
	{-774, 494, -436, 750},
	{610, -51, -272, 289},
	{115, -872, 382, -150},
	{-425, 646, 822, 503},
	{-862, -234, 709, 187},
	{725, -701, -788, 707},
	{69, 189, 852, -55},
	{62, 592, 366, -445},
	{-809, -452, 170, -587},
	{69, 106, 843, -105},
	{143, 797, -768, -674},
	{708, -677, -564, -34},
	{-25, 383, 198, 94},
	{279, 299, -474, -621},
	{377, 893, 212, -65},
	{-799, -640, 590, -441},
	{-687, -625, 644, 844},
	{599, -167, 347, 705},
	{241, 289, 595, 274},
	{-147, -61, 530, 223},
	{65, -494, 720, 243},
	{-551, 617, 459, 476},
	{396, -636, 127, -809},
	{697, 349, 612, 253},
	{635, 111, 568, 879},
	{108, -570, -24, 702},
	{597, 281, -408, -718},
	{-702, 244, -334, 193},
	{590, 856, -133, 15},
	{-260, 584, 132, 235},
	{229, 159, -837, -193},
	{-275, -493, -513, 643},
	{620, -199, -662, 643},
	{160, -485, -297, -220},
	{-444, -122, 99, 220},
	{-224, -85, -608, 578},
	{761, 788, 832, 542},
	{782, 849, 306, 278},
	{65, 533, -570, 225},
	{455, -16, -154, -539},
	{291, 442, 22, -462},
	{380, 512, -653, -640},
	{760, 16, 723, -296},
	{17, 300, 557, 325},
	{-253, -647, -646, -568},
	{522, 2, 787, 344},
	{-13, -236, -430, 702},
	{-93, -347, 628, -657},
	{629, 139, 355, 454},
	{447, -759, 694, -572},
	{861, -204, 13, -105},
	{606, 880, 318, 100},
	{405, 234, 375, -482},
	{435, 297, -190, 282},
	{228, 378, -96, -292},
	{430, -205, -863, -887},
	{-837, 821, -313, -845},
	{94, -148, 37, -304},
	{-121, 214, 126, -890},
	{381, -411, -464, 551},
	{211, -252, -354, 237},
	{185, 448, 859, -77},
	{851, -88, 759, -735},
	{889, 16, -273, -430},
	{520, 653, -697, 360},
	{781, -775, -890, -14},
	{-151, 367, -377, -462},
	{-157, -558, 783, 635},
	{201, -163, 384, -889},
	{-510, -833, 188, 817},
	{204, -849, 795, -328},
	{-53, -80, -414, -498},
	{344, -369, 558, -75},
	{420, -359, -379, 38},
	{899, -618, 673, -476},
	{-389, 170, -471, -709},
	{-432, 480, 217, -857},
	{-141, 439, -444, -843},
	{323, 839, 287, -687},
	{179, 846, -330, -264},
	{-424, -354, -782, 732},
	{515, -287, -350, -234},
	{-423, -46, 48, -644},
	{358, -555, 159, 779},
	{-544, -115, 317, -316},
	{-875, -566, 696, 187},
	{-592, 546, -356, 316},
	{228, 593, 589, 889},
	{-629, 690, 188, 338},
	{695, -19, -820, 739},
	{-407, -531, -71, -664},
	{754, 468, -108, 400},
	{775, -44, 253, -29},
	{578, 197, -88, 128},
	{-525, -853, -719, -708},
	{720, 560, -227, 22},
	{778, -753, -626, -148},
	{707, -882, -95, -895},
	{-724, 618, 702, -348},
	{-285, -766, -477, 641},
	{-690, 570, -528, -489},
	{422, -369, 750, 522},
	{633, -524, -573, 134},
	{470, 279, -355, -227},
	{-663, 708, -172, 525},
	{224, -603, -109, 127},
	{643, 719, 894, 570},
	{-507, 741, -51, 497},
	{-447, 153, -836, -630},
}

// cosTable is the 257-entry Q15 negative-cosine table used by LSP->LPC
// conversion: cosTable[k] = round(-cos(pi*k/256) * 32768).
var cosTable = func() [257]int32 {
	var t [257]int32
	for k := 0; k <= 256; k++ {
		v := -math.Cos(math.Pi * float64(k) / 256.0)
		t[k] = int32(math.Round(v * 32768))
	}
	return t
}()

// fixedCbGain holds the GainLevels quantized fixed-codebook gain
// magnitudes (3.2 dB steps) used by the multipulse excitation generator.
var fixedCbGain = [GainLevels]int32{
	1, 2, 3, 4, 6, 9, 13, 19,
	28, 40, 58, 85, 124, 180, 263, 383,
	559, 816, 1191, 1738, 2536, 3701, 5401, 7882,
}

// pulses[i] is the number of fixed-codebook pulses placed in subframe i
// at 6.3 kbit/s; maxPos[i] is the corresponding number of combinations
// C(30, pulses[i]), the exclusive upper bound on a valid pulse_pos field
// for that subframe.
var pulses = [Subframes]int{6, 5, 6, 5}

var maxPos = [Subframes]uint32{593775, 142506, 593775, 142506}

// combinatorialTable[j][i] = C(i, j), the number of ways to choose j
// pulses among the first i grid slots. This is the table the
// combinatorial decoder walks via repeated subtraction.
var combinatorialTable = func() [PulseMax + 1][combGridSlot + 1]uint32 {
	var t [PulseMax + 1][combGridSlot + 1]uint32
	for i := 0; i <= combGridSlot; i++ {
		t[0][i] = 1
	}
	for j := 1; j <= PulseMax; j++ {
		for i := j; i <= combGridSlot; i++ {
			t[j][i] = t[j][i-1] + t[j-1][i-1]
		}
	}
	return t
}()

// posBases gives the mixed-radix bases used to decompose the 13-bit
// combined pulse-position field at 6.3 kbit/s into one digit per
// subframe: combined = d0*810 + d1*90 + d2*9 + d3.
var posBases = [Subframes]uint32{810, 90, 9, 1}

// pitchContrib supplies the (lag, beta) harmonic-enhancement
// contribution used by the 5.3 kbit/s fixed-codebook pulse placement:
// entry 2*g is the lag contribution and 2*g+1 is beta in Q15, for
// adaptive-codebook gain index g.
var pitchContrib = [2 * 170]int32{
	2, 11546, 0, 11481, 0, 11379, 1, 11321,
	0, 11213, 0, 11134, 0, 11058, 0, 11006,
	0, 10940, 2, 10883, 0, 10819, 0, 10738,
	0, 10679, 0, 10619, 0, 10556, 0, 10488,
	0, 10415, 0, 10351, 0, 10288, 0, 10234,
	0, 10164, 1, 10062, 0, 9958, 0, 9903,
	0, 9806, 0, 9712, 0, 9654, 1, 9550,
	0, 9506, 0, 9403, 2, 9320, 0, 9261,
	0, 9167, 2, 9128, 0, 9071, 0, 9029,
	2, 8935, 0, 8841, 0, 8753, 0, 8678,
	0, 8612, 0, 8578, 1, 8516, 0, 8486,
	0, 8423, 1, 8318, 0, 8218, 0, 8173,
	0, 8120, 0, 8075, 0, 8024, 1, 7927,
	0, 7873, 0, 7806, 2, 7746, 0, 7689,
	0, 7581, 1, 7492, 0, 7434, 0, 7382,
	2, 7278, 0, 7246, 0, 7145, 1, 7039,
	0, 6961, 0, 6904, 0, 6809, 0, 6732,
	0, 6633, 1, 6571, 0, 6476, 0, 6407,
	1, 6371, 0, 6315, 0, 6248, 2, 6178,
	0, 6112, 0, 6023, 2, 5991, 0, 5947,
	0, 5896, 2, 5824, 0, 5781, 0, 5707,
	1, 5646, 0, 5586, 0, 5532, 2, 5427,
	0, 5338, 0, 5263, 1, 5193, 0, 5106,
	0, 5060, 0, 4963, 0, 4854, 0, 4786,
	0, 4715, 0, 4662, 0, 4622, 2, 4534,
	0, 4471, 0, 4423, 2, 4342, 0, 4277,
	0, 4237, 0, 4206, 0, 4163, 0, 4055,
	2, 3995, 0, 3892, 0, 3819, 2, 3787,
	0, 3751, 0, 3717, 2, 3652, 0, 3572,
	0, 3512, 2, 3437, 0, 3366, 0, 3314,
	1, 3219, 0, 3178, 0, 3132, 0, 3093,
	0, 3010, 0, 2923, 2, 2852, 0, 2786,
	0, 2678, 0, 2636, 0, 2605, 0, 2560,
	1, 2502, 0, 2401, 0, 2314, 1, 2239,
	0, 2181, 0, 2150, 1, 2064, 0, 2022,
	0, 1923, 1, 1818, 0, 1739, 0, 1703,
	0, 1601, 0, 1512, 0, 1403, 0, 1333,
	0, 1227, 0, 1165, 1, 1112, 0, 1055,
	0, 1014, 1, 913, 0, 813, 0, 725,
	2, 688, 0, 631, 0, 594, 2, 496,
	0, 455, 0, 369, 1, 302, 0, 231,
	0, 162, 0, 125, 0, 50, 0, 0,
	1, 0, 0, 0,
}

// adaptiveCbGain85/170 are the 5-tap adaptive-codebook (pitch)
// predictor coefficient tables, indexed [gain][fractional lag 0..3][tap]
// in Q14. The 85-entry table is selected at 6.3 kbit/s when pitch_lag is
// below 58; the 170-entry table is used otherwise.
var adaptiveCbGain85 = [85][4][PitchOrder]int32{
	{{-5, 762, 651, 231, 29}, {94, 488, 864, 505, 278}, {-93, 180, 445, 509, -2}, {49, 218, 505, 1012, 232}},
	{{112, 1099, 952, 323, -158}, {276, 563, 1541, 480, -62}, {-71, 388, 1021, 880, -36}, {-341, 315, 454, 1442, 123}},
	{{4, 794, 918, 125, 34}, {-107, 576, 1211, 441, -95}, {-308, 254, 884, 896, -161}, {-360, 241, 245, 1444, 355}},
	{{126, 1164, 933, 251, -64}, {98, 381, 1677, 605, 309}, {7, 354, 1211, 951, 166}, {-128, 40, 582, 1626, 400}},
	{{292, 1439, 1325, 166, -41}, {20, 590, 1932, 751, -78}, {60, 435, 1057, 1327, 105}, {-43, 191, 555, 2006, 580}},
	{{398, 1550, 1608, 634, 329}, {236, 655, 2241, 769, 290}, {-163, 449, 1619, 1486, 249}, {-225, 131, 865, 2399, 497}},
	{{435, 1701, 1849, 589, -182}, {112, 931, 2625, 870, 271}, {163, 665, 1709, 1837, 110}, {-227, 463, 1082, 2383, 792}},
	{{483, 1573, 1829, 454, 50}, {-78, 864, 2436, 811, 214}, {-53, 664, 1712, 1542, 641}, {-314, 273, 993, 2629, 1060}},
	{{104, 1851, 2031, 551, -3}, {50, 1065, 2964, 1032, 220}, {-142, 403, 1935, 2043, 282}, {-267, 319, 1149, 2778, 973}},
	{{603, 2140, 2254, 761, 426}, {56, 1267, 3399, 992, 50}, {284, 657, 2448, 2395, 321}, {56, 547, 1236, 3382, 777}},
	{{890, 2721, 2641, 678, 86}, {483, 1543, 4179, 1438, 416}, {224, 582, 2535, 2704, 639}, {-23, 515, 1472, 3872, 1255}},
	{{809, 2855, 2976, 604, 50}, {338, 1336, 4231, 1522, 579}, {-73, 636, 2636, 2644, 462}, {59, 618, 1373, 3988, 1449}},
	{{759, 3179, 3197, 846, 185}, {418, 1702, 4859, 1692, 336}, {526, 915, 3282, 3230, 776}, {-117, 485, 1732, 4590, 1346}},
	{{536, 3181, 2945, 933, 28}, {331, 1434, 4608, 1473, 493}, {441, 1022, 2997, 2922, 667}, {30, 631, 1586, 4488, 1333}},
	{{683, 2905, 3217, 1043, 74}, {554, 1742, 4625, 1661, 455}, {155, 1020, 3007, 2893, 791}, {148, 664, 1443, 4688, 1478}},
	{{1113, 3640, 3632, 893, 276}, {340, 2014, 5543, 1793, 552}, {414, 869, 3738, 3751, 632}, {332, 462, 1684, 5244, 1523}},
	{{636, 3691, 3545, 1035, 230}, {373, 1763, 5231, 1697, 587}, {172, 1165, 3785, 3615, 772}, {59, 515, 1666, 5461, 1728}},
	{{825, 4094, 3892, 1148, 416}, {275, 1988, 5741, 1947, 398}, {168, 996, 3791, 3809, 1165}, {183, 589, 2055, 5967, 1896}},
	{{866, 4115, 4165, 1224, 401}, {612, 1907, 6102, 1995, 530}, {317, 1025, 4147, 3936, 894}, {403, 597, 2230, 5917, 1856}},
	{{855, 4498, 4563, 1356, 206}, {949, 2376, 6645, 2215, 630}, {478, 1207, 4409, 4305, 1139}, {302, 679, 2318, 6466, 2110}},
	{{1117, 4572, 4523, 1250, 106}, {727, 2399, 6813, 2310, 967}, {702, 1241, 4752, 4770, 1027}, {223, 789, 2329, 6808, 2402}},
	{{1360, 4648, 4807, 1205, 305}, {816, 2260, 6962, 2331, 382}, {416, 1276, 4965, 4947, 997}, {239, 861, 2325, 7214, 2301}},
	{{1461, 5010, 5008, 1265, 552}, {881, 2513, 7344, 2428, 937}, {566, 1506, 4941, 4696, 1169}, {366, 645, 2387, 7128, 2346}},
	{{1323, 4822, 4816, 1224, 301}, {605, 2411, 7587, 2606, 521}, {502, 1471, 5162, 4816, 1359}, {20, 1038, 2590, 7431, 2613}},
	{{1278, 4970, 5272, 1370, 486}, {860, 2491, 7605, 2456, 745}, {409, 1488, 5182, 5251, 1200}, {345, 1064, 2482, 7733, 2453}},
	{{1442, 5483, 5378, 1390, 554}, {908, 2934, 8231, 2801, 772}, {549, 1509, 5445, 5403, 1311}, {274, 736, 2874, 7919, 2659}},
	{{1598, 5405, 5749, 1634, 364}, {760, 2911, 8062, 2986, 931}, {492, 1432, 5503, 5528, 1559}, {220, 1012, 3043, 8237, 2593}},
	{{1336, 5774, 5884, 1507, 555}, {1145, 2996, 8808, 3208, 779}, {801, 1736, 6002, 6092, 1707}, {360, 850, 2922, 8812, 2700}},
	{{1749, 5854, 5961, 1549, 492}, {710, 3044, 8620, 3195, 608}, {450, 1644, 6123, 5895, 1598}, {238, 1140, 2924, 8807, 2629}},
	{{1682, 6418, 6366, 1628, 485}, {939, 3169, 9410, 3314, 1018}, {392, 1719, 6319, 6696, 1850}, {295, 1178, 3356, 9688, 3090}},
	{{1491, 6340, 6308, 1622, 741}, {997, 3309, 9254, 3084, 700}, {568, 1603, 6157, 6158, 1580}, {164, 1143, 3366, 9176, 3110}},
	{{1794, 6756, 6612, 1744, 515}, {1100, 3401, 10074, 3444, 1089}, {788, 1749, 6583, 6657, 1587}, {266, 1051, 3320, 9955, 3315}},
	{{1763, 6820, 6492, 2053, 630}, {1149, 3536, 9837, 3306, 1077}, {810, 1937, 6661, 6476, 1774}, {510, 1128, 3337, 9662, 3199}},
	{{2083, 7055, 7307, 2192, 556}, {1135, 3466, 10505, 3761, 1131}, {622, 1924, 7319, 7282, 1735}, {386, 1225, 3710, 10756, 3456}},
	{{1823, 7119, 6922, 1853, 407}, {1058, 3477, 10441, 3701, 1045}, {887, 1999, 6827, 6962, 1803}, {618, 1082, 3647, 10327, 3607}},
	{{1748, 7781, 7492, 2176, 857}, {839, 3927, 11341, 3862, 1005}, {597, 2119, 7489, 7522, 1785}, {512, 1192, 3738, 11123, 3769}},
	{{2152, 7780, 7868, 2010, 852}, {1102, 3854, 11605, 4021, 1096}, {788, 2123, 7920, 7986, 2077}, {571, 1482, 3913, 11506, 3609}},
	{{2048, 7849, 7999, 2184, 818}, {1306, 4120, 11752, 4061, 1177}, {589, 2228, 8123, 7817, 2200}, {464, 1333, 4250, 11598, 3783}},
	{{2120, 7771, 7919, 2061, 1036}, {1085, 3859, 11312, 3979, 1246}, {833, 2326, 7674, 7660, 2012}, {615, 1322, 3877, 11249, 3892}},
	{{1979, 7843, 7926, 2144, 795}, {1074, 4161, 11851, 4000, 1504}, {732, 2040, 7819, 8065, 1835}, {661, 1293, 3917, 11937, 3797}},
	{{2213, 8441, 8458, 2573, 786}, {1224, 4313, 12821, 4346, 1402}, {634, 2448, 8531, 8600, 2455}, {424, 1656, 4524, 12818, 4210}},
	{{2402, 8422, 8333, 2271, 654}, {1369, 4177, 12340, 4477, 1562}, {960, 2454, 8607, 8301, 2326}, {610, 1548, 4365, 12415, 3947}},
	{{2181, 8950, 9184, 2456, 915}, {1361, 4429, 13193, 4491, 1382}, {943, 2688, 9007, 9187, 2362}, {617, 1535, 4503, 13388, 4389}},
	{{2206, 9018, 9000, 2665, 872}, {1209, 4467, 13079, 4294, 1230}, {964, 2537, 9004, 8951, 2477}, {463, 1568, 4372, 13065, 4551}},
	{{2238, 9257, 9003, 2502, 1077}, {1325, 4874, 13602, 4593, 1565}, {936, 2728, 9250, 9258, 2599}, {505, 1534, 4501, 13484, 4603}},
	{{2351, 9007, 9259, 2702, 1212}, {1600, 4766, 13490, 4583, 1460}, {985, 2385, 9135, 9331, 2541}, {685, 1516, 4643, 13407, 4257}},
	{{2793, 9516, 9688, 2731, 940}, {1490, 4759, 14288, 4741, 1705}, {1054, 2795, 9539, 9467, 2501}, {661, 1531, 5081, 14041, 4551}},
	{{2514, 9793, 9829, 2587, 772}, {1693, 4959, 14302, 4806, 1484}, {931, 2613, 9533, 9524, 2344}, {740, 1619, 4736, 14393, 4615}},
	{{2748, 10104, 10129, 2879, 1140}, {1873, 4965, 14894, 5298, 1506}, {897, 2678, 9881, 9947, 2427}, {669, 1620, 5201, 14927, 4989}},
	{{2365, 9891, 9871, 2890, 993}, {1733, 4930, 14459, 5146, 1806}, {1034, 2610, 9962, 9855, 2505}, {592, 1638, 5130, 14616, 4949}},
	{{2577, 10486, 10436, 2875, 1253}, {1591, 5141, 15403, 5338, 1661}, {1228, 2723, 10542, 10528, 2574}, {850, 1664, 5420, 15356, 5196}},
	{{2805, 10667, 10567, 2823, 1137}, {1776, 5301, 15915, 5421, 1749}, {971, 3107, 10584, 10759, 2818}, {624, 1653, 5318, 15666, 5493}},
	{{3212, 10802, 10853, 2974, 1130}, {1950, 5656, 16285, 5711, 2029}, {1117, 3247, 10972, 11052, 3057}, {927, 1853, 5537, 16037, 5379}},
	{{2676, 11069, 11138, 3226, 1182}, {1558, 5477, 16319, 5433, 1814}, {947, 3124, 10991, 11000, 2856}, {628, 2054, 5692, 16024, 5477}},
	{{2810, 10826, 10918, 3052, 1312}, {1693, 5477, 16059, 5388, 1862}, {1036, 3160, 11003, 11020, 3074}, {606, 1866, 5545, 15907, 5372}},
	{{2998, 11713, 11656, 3088, 915}, {1943, 5723, 16945, 5815, 1588}, {1103, 3070, 11715, 11665, 3038}, {703, 2076, 5842, 17145, 5866}},
	{{3165, 11480, 11715, 3432, 1332}, {2131, 6000, 17098, 5763, 2028}, {1266, 3125, 11679, 11502, 3212}, {821, 1986, 6028, 17115, 5716}},
	{{3010, 11689, 11577, 3369, 1284}, {2019, 5811, 17250, 5791, 1848}, {1315, 3276, 11515, 11632, 2883}, {996, 2057, 5791, 16930, 5776}},
	{{3244, 11859, 11926, 3153, 1465}, {1922, 6212, 17502, 6223, 1900}, {1139, 3212, 11864, 11992, 3188}, {851, 2112, 5958, 17391, 5929}},
	{{3553, 12250, 12069, 3573, 1035}, {1866, 6407, 18003, 6094, 2278}, {1387, 3408, 12211, 12023, 3249}, {857, 2177, 6137, 18011, 6113}},
	{{3302, 12118, 11940, 3354, 1388}, {1939, 6085, 17853, 6330, 1735}, {1199, 3263, 12092, 11975, 3387}, {963, 2097, 6039, 17945, 5813}},
	{{3331, 12389, 12152, 3529, 1436}, {1927, 6047, 18002, 6179, 1729}, {1448, 3440, 12109, 12087, 3342}, {1058, 2048, 6352, 18113, 5936}},
	{{3280, 12769, 12671, 3556, 1117}, {1906, 6371, 18622, 6458, 2106}, {1417, 3483, 12806, 12466, 3341}, {754, 2240, 6593, 18527, 6139}},
	{{3611, 12596, 12679, 3458, 1504}, {2089, 6441, 18637, 6339, 1816}, {1270, 3550, 12783, 12642, 3105}, {1071, 2256, 6434, 18624, 6299}},
	{{3708, 13000, 12777, 3410, 1529}, {2352, 6697, 19151, 6651, 2111}, {1423, 3491, 13006, 13086, 3333}, {901, 2249, 6691, 18962, 6105}},
	{{3334, 13038, 13331, 3803, 1468}, {2339, 6828, 19422, 6620, 2268}, {1477, 3560, 13169, 13012, 3434}, {1212, 2397, 6681, 19515, 6623}},
	{{3764, 13388, 13305, 3891, 1449}, {2130, 6977, 19792, 6814, 2239}, {1354, 3916, 13348, 13475, 3761}, {807, 2398, 6627, 19840, 6866}},
	{{3574, 13656, 13810, 3721, 1453}, {2227, 6987, 20024, 6779, 2014}, {1385, 3795, 13645, 13520, 3678}, {1089, 2362, 6809, 20238, 6915}},
	{{3784, 13789, 13593, 3708, 1449}, {2336, 6900, 20376, 6833, 2237}, {1466, 3891, 13759, 13669, 3797}, {727, 2215, 6798, 20288, 6844}},
	{{3759, 14052, 14114, 4013, 1376}, {2025, 7245, 20974, 7196, 2256}, {1716, 3843, 13905, 14239, 3885}, {1049, 2393, 7146, 20893, 7189}},
	{{3641, 13967, 13959, 3839, 1608}, {2434, 7035, 20866, 7181, 2193}, {1566, 3907, 14081, 14104, 3822}, {810, 2376, 7113, 21008, 7214}},
	{{3871, 14354, 14307, 4241, 1789}, {2190, 7419, 21363, 7216, 2306}, {1663, 4009, 14385, 14546, 3842}, {1088, 2574, 7281, 21520, 7070}},
	{{3784, 14544, 14601, 4235, 1379}, {2292, 7521, 21526, 7382, 2647}, {1598, 4032, 14405, 14587, 3956}, {1122, 2651, 7270, 21579, 7042}},
	{{4284, 15175, 15095, 4032, 1287}, {2165, 7807, 22103, 7670, 2446}, {1460, 4141, 14845, 15130, 4013}, {944, 2481, 7760, 21944, 7440}},
	{{4264, 14938, 14965, 4139, 1566}, {2444, 7814, 21919, 7560, 2399}, {1477, 4195, 14808, 15081, 4118}, {1207, 2667, 7427, 22193, 7432}},
	{{3995, 15272, 15391, 4305, 1565}, {2314, 7619, 22686, 7729, 2541}, {1645, 4446, 15513, 15260, 4364}, {1216, 2788, 7679, 22671, 7618}},
	{{4204, 15157, 15285, 4180, 1713}, {2286, 7846, 22540, 7710, 2478}, {1432, 4340, 15305, 15070, 3966}, {1059, 2684, 7583, 22367, 7465}},
	{{4242, 15555, 15501, 4405, 1343}, {2509, 7873, 23154, 7948, 2437}, {1614, 4473, 15478, 15811, 4311}, {966, 2534, 8038, 23040, 7675}},
	{{4310, 15647, 15736, 4252, 1732}, {2408, 8075, 23103, 7773, 2241}, {1675, 4262, 15453, 15558, 4438}, {924, 2667, 7827, 23029, 7567}},
	{{4417, 16168, 16100, 4429, 1637}, {2704, 8030, 23925, 8404, 2440}, {1675, 4399, 16116, 16288, 4200}, {1285, 2962, 8203, 23976, 8347}},
	{{4449, 16515, 16335, 4747, 1907}, {2599, 8192, 24089, 8183, 2557}, {1779, 4390, 16344, 16588, 4521}, {1024, 2798, 8525, 24017, 8045}},
	{{4164, 16133, 16388, 4452, 1873}, {2766, 8075, 24045, 8384, 2606}, {1798, 4364, 16346, 16231, 4562}, {1188, 2616, 8083, 23911, 8314}},
	{{4225, 16162, 16429, 4638, 1776}, {2808, 8279, 23905, 8362, 2936}, {1750, 4712, 16148, 16479, 4532}, {1245, 2796, 8177, 24141, 7902}},
	{{4377, 16626, 16755, 4704, 1923}, {2458, 8508, 24594, 8433, 2607}, {1619, 4517, 16450, 16724, 4336}, {1449, 2687, 8546, 24649, 8168}},
	{{4511, 16704, 16790, 4578, 1578}, {2621, 8533, 24696, 8648, 2527}, {1805, 4754, 16813, 16749, 4525}, {1255, 2872, 8422, 24697, 8266}},
}

var adaptiveCbGain170 = [170][4][PitchOrder]int32{
	{{-8, 379, 453, 246, 47}, {115, 80, 576, 392, 152}, {-130, 97, 391, 417, -260}, {-139, 124, 169, 498, 239}},
	{{223, 597, 272, -56, -64}, {-131, 266, 829, 424, -19}, {-168, 179, 438, 338, -359}, {-375, 123, 336, 661, 314}},
	{{93, 668, 605, 319, -376}, {82, 450, 1055, 215, -105}, {72, 154, 405, 754, -245}, {-271, 159, 340, 707, 339}},
	{{-160, 1162, 872, 176, -160}, {237, 458, 1445, 417, -34}, {18, 425, 1117, 1097, -73}, {-99, 327, 560, 1469, 567}},
	{{271, 1110, 978, 272, -296}, {-147, 610, 1329, 343, 121}, {195, 290, 1088, 827, 80}, {78, 243, 519, 1343, 412}},
	{{390, 1185, 1061, 206, -88}, {-200, 631, 1569, 448, 76}, {-93, 396, 1089, 1178, 139}, {-95, 166, 606, 1626, 497}},
	{{232, 1297, 1471, 546, 243}, {366, 772, 2127, 609, 53}, {-47, 326, 1447, 1437, 277}, {-180, 340, 732, 2098, 563}},
	{{206, 1393, 1395, 514, 155}, {95, 837, 2223, 621, 19}, {104, 359, 1246, 1333, 479}, {-137, 267, 910, 2228, 634}},
	{{272, 1219, 1142, 255, -212}, {3, 536, 1650, 538, 303}, {-65, 209, 1306, 949, 187}, {-67, 113, 581, 1768, 455}},
	{{513, 1579, 1678, 378, -183}, {171, 794, 2393, 736, 260}, {-19, 558, 1868, 1546, 207}, {125, 358, 1081, 2432, 754}},
	{{377, 2024, 1835, 652, 152}, {255, 974, 2645, 804, 430}, {-64, 668, 1884, 1939, 263}, {65, 368, 1012, 2688, 686}},
	{{346, 1618, 1612, 682, 149}, {213, 774, 2525, 792, 290}, {154, 360, 1822, 1743, 476}, {37, 442, 963, 2738, 773}},
	{{219, 1665, 1501, 504, 152}, {149, 637, 2555, 823, 234}, {26, 627, 1655, 1509, 397}, {161, 392, 898, 2243, 501}},
	{{420, 2040, 1915, 665, 33}, {251, 1190, 3058, 892, 183}, {39, 705, 2217, 2213, 543}, {26, 374, 1030, 3180, 1082}},
	{{536, 1991, 1988, 478, -79}, {288, 855, 2661, 862, 13}, {210, 612, 1998, 1889, 265}, {-185, 481, 802, 2917, 561}},
	{{571, 2127, 2296, 641, 270}, {152, 1258, 3387, 1145, 162}, {-21, 680, 2311, 2267, 521}, {-69, 465, 1244, 3284, 761}},
	{{419, 2352, 2255, 499, -90}, {464, 1079, 3566, 1159, 402}, {-70, 614, 2431, 2409, 534}, {17, 375, 1108, 3169, 928}},
	{{328, 2236, 2419, 801, 287}, {443, 1075, 3268, 1200, 282}, {162, 708, 2105, 2227, 595}, {-114, 223, 1127, 3542, 842}},
	{{515, 2456, 2623, 706, -14}, {112, 1245, 3661, 1286, 36}, {267, 783, 2569, 2396, 532}, {74, 539, 1402, 3606, 1161}},
	{{746, 2427, 2737, 640, 1}, {315, 1203, 3687, 1313, 181}, {334, 713, 2774, 2544, 730}, {-96, 354, 1489, 4044, 1000}},
	{{631, 2297, 2477, 541, 309}, {112, 1088, 3305, 1077, 159}, {245, 804, 2255, 2162, 546}, {-150, 498, 1233, 3356, 898}},
	{{886, 2724, 2463, 630, 67}, {275, 1490, 3822, 1168, 379}, {88, 649, 2405, 2511, 409}, {-93, 353, 1383, 3705, 1155}},
	{{512, 2964, 2984, 858, 289}, {138, 1390, 4164, 1614, 335}, {132, 993, 2653, 2678, 352}, {116, 376, 1408, 4049, 1466}},
	{{771, 2662, 2866, 912, 68}, {357, 1380, 3842, 1401, 23}, {355, 712, 2842, 2895, 594}, {55, 611, 1231, 3958, 1129}},
	{{921, 3151, 3251, 1071, 84}, {487, 1691, 4806, 1581, 353}, {65, 874, 3059, 3045, 421}, {-60, 609, 1439, 4529, 1694}},
	{{521, 3121, 3351, 740, 163}, {343, 1563, 4726, 1565, 277}, {59, 1091, 3389, 3139, 707}, {-42, 532, 1534, 4866, 1565}},
	{{637, 3085, 3126, 1009, 13}, {412, 1656, 4334, 1557, 289}, {201, 981, 3150, 2911, 926}, {141, 658, 1608, 4519, 1209}},
	{{938, 3380, 3323, 1016, 51}, {633, 1652, 5042, 1736, 517}, {519, 737, 3244, 3155, 748}, {45, 625, 1528, 4761, 1500}},
	{{773, 2947, 3059, 996, 248}, {500, 1402, 4446, 1627, 441}, {198, 1011, 3134, 3157, 624}, {258, 657, 1586, 4568, 1535}},
	{{591, 3215, 3390, 876, 336}, {419, 1911, 5228, 1830, 530}, {162, 1128, 3213, 3382, 814}, {156, 570, 1653, 4864, 1604}},
	{{742, 3342, 3114, 1075, 440}, {387, 1689, 4642, 1734, 509}, {270, 837, 3237, 3237, 624}, {209, 463, 1815, 4912, 1487}},
	{{895, 3821, 3775, 1190, 473}, {584, 1905, 5515, 1927, 609}, {262, 1115, 3862, 3832, 806}, {103, 785, 2087, 5525, 2108}},
	{{735, 3734, 3755, 939, 278}, {478, 1770, 5574, 2075, 452}, {318, 982, 3842, 3672, 890}, {247, 659, 2061, 5628, 1908}},
	{{831, 3987, 3622, 1063, 351}, {665, 1778, 5820, 2009, 422}, {238, 950, 3931, 3685, 957}, {-69, 493, 1960, 5537, 1757}},
	{{1163, 3911, 4053, 1076, 191}, {302, 2257, 6222, 1942, 381}, {446, 1251, 4265, 4003, 680}, {216, 578, 2159, 5909, 2044}},
	{{1109, 4196, 3847, 997, 467}, {676, 2049, 6080, 2035, 603}, {496, 1315, 3922, 3942, 903}, {67, 697, 2043, 5754, 2010}},
	{{1278, 4430, 4261, 1288, 430}, {544, 2164, 6432, 2095, 576}, {184, 1026, 4437, 4075, 1000}, {100, 574, 2287, 6213, 2030}},
	{{860, 4301, 4605, 1037, 411}, {733, 2192, 6603, 2102, 797}, {429, 1151, 4312, 4345, 940}, {420, 811, 2278, 6367, 2095}},
	{{1284, 4496, 4514, 1344, 389}, {788, 2423, 6463, 2452, 587}, {442, 1260, 4523, 4618, 1333}, {419, 856, 2234, 6758, 2296}},
	{{1041, 4297, 4096, 1336, 390}, {665, 2124, 6118, 1960, 489}, {431, 995, 4132, 4304, 923}, {200, 779, 2196, 6145, 1863}},
	{{953, 4426, 4242, 1306, 394}, {338, 2162, 6268, 2338, 527}, {538, 1188, 4164, 4428, 1027}, {101, 674, 2404, 6464, 2005}},
	{{1035, 4491, 4472, 1121, 524}, {711, 2120, 6326, 2263, 366}, {195, 1094, 4466, 4248, 1343}, {210, 856, 2308, 6288, 2128}},
	{{1118, 4396, 4319, 1208, 148}, {758, 2123, 6412, 2321, 477}, {499, 1049, 4606, 4457, 1046}, {280, 848, 2262, 6753, 2087}},
	{{1115, 4406, 4524, 1170, 607}, {383, 2175, 6857, 2306, 728}, {341, 1189, 4480, 4616, 1371}, {249, 648, 2186, 6733, 2272}},
	{{926, 4923, 4890, 1204, 459}, {611, 2573, 7239, 2465, 836}, {664, 1197, 4862, 4962, 1361}, {48, 818, 2645, 7224, 2452}},
	{{1604, 5235, 5018, 1395, 554}, {895, 2523, 7734, 2638, 724}, {325, 1514, 5376, 5112, 1455}, {501, 935, 2766, 7878, 2482}},
	{{1299, 5083, 4958, 1312, 521}, {532, 2656, 7329, 2455, 808}, {666, 1565, 4978, 5069, 1095}, {159, 755, 2642, 7337, 2560}},
	{{1072, 5089, 5115, 1542, 390}, {761, 2512, 7844, 2850, 918}, {278, 1530, 5320, 5263, 1374}, {192, 726, 2496, 7795, 2748}},
	{{1109, 5013, 5219, 1441, 404}, {505, 2648, 7323, 2611, 963}, {346, 1478, 5083, 5185, 1191}, {287, 931, 2770, 7411, 2521}},
	{{1494, 5561, 5441, 1724, 556}, {836, 2964, 8138, 2865, 596}, {687, 1582, 5611, 5581, 1409}, {420, 821, 2912, 8240, 2592}},
	{{1397, 5549, 5358, 1559, 635}, {698, 2675, 8024, 2728, 999}, {207, 1703, 5466, 5331, 1448}, {491, 858, 2931, 7774, 2616}},
	{{1339, 5558, 5802, 1639, 338}, {616, 2884, 8437, 2965, 675}, {663, 1394, 5518, 5592, 1733}, {164, 902, 2826, 8422, 2834}},
	{{1587, 5732, 5938, 1612, 683}, {600, 2839, 8652, 2823, 1096}, {522, 1625, 5675, 5926, 1723}, {465, 1014, 2894, 8628, 2915}},
	{{1253, 5790, 5969, 1481, 350}, {803, 3039, 8420, 2854, 732}, {448, 1498, 5977, 5920, 1400}, {661, 801, 2890, 8393, 2536}},
	{{1328, 6112, 6146, 1485, 498}, {737, 2929, 8960, 3153, 965}, {265, 1492, 6096, 5931, 1660}, {580, 1072, 2967, 8772, 2831}},
	{{1416, 5957, 5960, 1725, 314}, {926, 2848, 8703, 2953, 692}, {585, 1511, 5781, 6088, 1717}, {128, 862, 2887, 8885, 2706}},
	{{1332, 6212, 5979, 1573, 342}, {1059, 2898, 8809, 2941, 1014}, {658, 1736, 6086, 5880, 1650}, {542, 1014, 3259, 8897, 3000}},
	{{1458, 6098, 6391, 1843, 483}, {654, 3239, 9199, 3018, 882}, {768, 1589, 6333, 6301, 1612}, {326, 1093, 3095, 9385, 3069}},
	{{1529, 6171, 6043, 1812, 520}, {916, 3140, 8864, 3016, 1159}, {539, 1808, 5965, 5974, 1722}, {442, 1208, 3075, 8863, 3213}},
	{{1837, 6242, 6178, 1838, 600}, {1138, 3252, 9372, 3172, 1013}, {453, 1729, 6116, 6175, 1560}, {335, 1079, 3034, 9179, 3069}},
	{{1715, 6291, 6265, 1767, 855}, {858, 3378, 9222, 3393, 913}, {517, 1770, 6380, 6538, 1698}, {607, 1201, 3282, 9344, 3138}},
	{{1352, 6517, 6573, 1837, 670}, {816, 3227, 9678, 3424, 861}, {534, 1864, 6544, 6432, 1668}, {560, 1032, 3122, 9624, 3019}},
	{{1817, 6607, 6775, 1912, 526}, {1119, 3255, 9551, 3496, 1052}, {714, 2000, 6631, 6780, 1794}, {422, 1323, 3379, 9553, 2919}},
	{{1618, 6689, 6684, 1763, 549}, {769, 3391, 9903, 3271, 918}, {639, 1745, 6530, 6499, 1584}, {368, 1279, 3427, 9875, 3424}},
	{{1576, 6844, 6952, 2035, 717}, {1259, 3591, 9985, 3375, 765}, {761, 1838, 7008, 6741, 1735}, {160, 1098, 3571, 10107, 3009}},
	{{1823, 7006, 6923, 1870, 587}, {907, 3429, 10036, 3526, 1009}, {564, 1748, 6886, 6765, 2051}, {342, 1087, 3620, 9971, 3413}},
	{{2061, 7097, 7334, 2003, 435}, {1166, 3861, 10594, 3664, 875}, {499, 1971, 7203, 7347, 1858}, {449, 1303, 3783, 10741, 3729}},
	{{1761, 7119, 7121, 2155, 729}, {1142, 3547, 10672, 3836, 922}, {776, 2064, 7328, 7029, 1812}, {125, 1079, 3538, 10417, 3564}},
	{{1910, 6996, 7083, 1745, 563}, {1181, 3660, 10087, 3353, 1029}, {473, 1793, 7040, 7016, 1753}, {559, 1095, 3379, 10269, 3140}},
	{{1663, 6950, 6980, 1970, 651}, {957, 3758, 10529, 3690, 1133}, {791, 1925, 7105, 7213, 1880}, {197, 1155, 3792, 10679, 3500}},
	{{1819, 7458, 7425, 2206, 909}, {946, 3743, 10901, 3801, 1125}, {794, 2137, 7371, 7338, 1866}, {592, 1088, 3729, 11039, 3714}},
	{{1996, 7708, 7608, 2270, 703}, {1004, 4025, 11117, 4063, 1323}, {535, 2306, 7570, 7665, 1955}, {306, 1190, 4062, 11134, 3504}},
	{{1692, 7500, 7483, 2091, 676}, {1015, 3902, 11046, 3838, 1074}, {985, 1867, 7493, 7314, 1634}, {134, 1339, 3751, 10773, 3408}},
	{{2198, 7951, 7910, 2076, 836}, {971, 4063, 11523, 3870, 974}, {930, 2237, 7993, 7970, 1849}, {444, 1226, 3847, 11614, 3811}},
	{{2222, 7992, 7749, 2097, 869}, {1245, 4154, 11401, 3829, 1289}, {578, 2293, 7818, 7899, 2235}, {380, 1199, 4075, 11476, 3755}},
	{{2298, 7821, 8134, 2424, 734}, {1324, 3952, 11677, 4150, 1429}, {828, 2156, 7855, 8052, 2291}, {716, 1218, 4272, 11705, 3718}},
	{{1860, 7930, 7902, 2316, 732}, {1180, 4152, 11633, 4202, 1374}, {777, 2322, 7783, 7780, 2193}, {192, 1513, 3951, 11593, 4021}},
	{{1813, 7903, 7837, 2045, 946}, {1133, 3897, 11443, 4057, 1201}, {661, 2253, 7879, 7753, 2172}, {333, 1311, 3999, 11461, 3846}},
	{{2331, 8139, 8257, 2186, 727}, {1034, 4354, 12248, 4372, 1035}, {964, 2510, 8431, 8410, 2122}, {444, 1461, 4398, 12251, 4321}},
	{{2308, 8319, 8328, 2560, 1092}, {1203, 4319, 12352, 4119, 1396}, {575, 2405, 8294, 8401, 1964}, {576, 1281, 4159, 12644, 4075}},
	{{2097, 8197, 8156, 2316, 901}, {1347, 4268, 12361, 4296, 1285}, {763, 2198, 8339, 8193, 2297}, {570, 1431, 4325, 12405, 4114}},
	{{2006, 8576, 8718, 2583, 841}, {1591, 4365, 12524, 4184, 1574}, {710, 2343, 8488, 8567, 2292}, {674, 1651, 4244, 12589, 4346}},
	{{2301, 8622, 8868, 2256, 728}, {1482, 4579, 12916, 4395, 1344}, {893, 2330, 8594, 8802, 2394}, {621, 1651, 4366, 12747, 4326}},
	{{2389, 8693, 8717, 2581, 1004}, {1416, 4464, 12801, 4332, 1411}, {833, 2499, 8589, 8942, 2536}, {403, 1522, 4614, 13088, 4315}},
	{{2469, 8942, 9134, 2420, 740}, {1461, 4618, 13232, 4674, 1597}, {828, 2441, 8951, 8865, 2378}, {540, 1576, 4626, 13026, 4321}},
	{{2166, 9041, 8978, 2374, 849}, {1439, 4603, 13245, 4525, 1315}, {1130, 2630, 9171, 9096, 2222}, {892, 1438, 4480, 13514, 4341}},
	{{2603, 9036, 8913, 2656, 781}, {1429, 4360, 13079, 4625, 1399}, {702, 2438, 8895, 8917, 2467}, {631, 1407, 4643, 13222, 4538}},
	{{2237, 9334, 9257, 2658, 898}, {1665, 4579, 13462, 4601, 1518}, {882, 2413, 9220, 9132, 2364}, {675, 1396, 4763, 13736, 4436}},
	{{2156, 9024, 9052, 2572, 867}, {1215, 4352, 12882, 4528, 1297}, {662, 2534, 8741, 8850, 2335}, {745, 1563, 4605, 13243, 4419}},
	{{2353, 9272, 9252, 2415, 1128}, {1549, 4670, 13699, 4725, 1275}, {679, 2677, 9495, 9341, 2366}, {564, 1794, 4626, 13640, 4717}},
	{{2413, 9359, 9373, 2702, 925}, {1310, 4507, 13464, 4787, 1346}, {1040, 2434, 9031, 9234, 2386}, {401, 1768, 4844, 13552, 4689}},
	{{2646, 9351, 9243, 2688, 918}, {1242, 4663, 13979, 4700, 1488}, {901, 2499, 9252, 9423, 2428}, {290, 1577, 4824, 13966, 4497}},
	{{2606, 9437, 9359, 2508, 1074}, {1342, 4689, 14055, 4665, 1381}, {957, 2595, 9447, 9593, 2366}, {608, 1587, 4723, 14134, 4432}},
	{{2697, 9778, 9819, 2676, 968}, {1358, 4791, 14463, 4915, 1653}, {916, 2796, 9690, 9589, 2331}, {823, 1681, 4972, 14519, 4854}},
	{{2736, 9843, 9788, 2891, 1044}, {1442, 5173, 14745, 4818, 1556}, {876, 2709, 9688, 9970, 2793}, {759, 1873, 4843, 14399, 4933}},
	{{2636, 9746, 9789, 2586, 948}, {1591, 4897, 14577, 4900, 1516}, {1005, 2721, 9946, 9944, 2565}, {871, 1805, 5041, 14598, 4814}},
	{{2825, 9735, 9999, 2902, 952}, {1626, 5054, 14546, 5065, 1495}, {919, 2948, 9755, 9989, 2367}, {778, 1861, 4914, 14470, 4679}},
	{{2659, 9937, 10043, 2831, 779}, {1627, 5044, 14832, 5268, 1415}, {1048, 2960, 9796, 10102, 2789}, {713, 1648, 5033, 14743, 4750}},
	{{2708, 10168, 10128, 2794, 973}, {1332, 5327, 15377, 5133, 1569}, {1053, 2705, 10435, 10169, 2460}, {442, 1682, 5204, 15080, 5341}},
	{{2404, 10320, 10266, 2818, 873}, {1652, 5113, 15369, 5250, 1426}, {1229, 2851, 10430, 10218, 2791}, {726, 1741, 5233, 15377, 5143}},
	{{2727, 9964, 10131, 2751, 985}, {1578, 5165, 14766, 5299, 1336}, {844, 2839, 10216, 10006, 2980}, {530, 1716, 4978, 14773, 4854}},
	{{2754, 10170, 10240, 2760, 1002}, {1762, 5044, 14978, 5180, 1844}, {1015, 2943, 10093, 10286, 2978}, {774, 1804, 5397, 15196, 5207}},
	{{2870, 10545, 10293, 2799, 1091}, {1464, 5509, 15362, 5292, 1821}, {1094, 3096, 10633, 10485, 2734}, {710, 1767, 5435, 15510, 5126}},
	{{2687, 10230, 10316, 3063, 875}, {1653, 5404, 15252, 5276, 1524}, {934, 3066, 10485, 10211, 2586}, {816, 1760, 5052, 15173, 4903}},
	{{2936, 10583, 10331, 2917, 868}, {1840, 5275, 15437, 5288, 1669}, {1234, 2798, 10563, 10580, 2934}, {503, 1949, 5295, 15312, 5060}},
	{{2924, 10867, 11060, 3179, 941}, {1572, 5665, 16111, 5457, 1677}, {1422, 3229, 10823, 11077, 3054}, {874, 1841, 5761, 16312, 5300}},
	{{2827, 10944, 11222, 2929, 1261}, {2073, 5608, 16418, 5814, 1858}, {870, 3199, 11189, 11023, 3061}, {865, 2066, 5469, 16456, 5282}},
	{{2800, 11153, 10989, 3170, 950}, {2045, 5786, 16426, 5609, 1510}, {1442, 3258, 10976, 10903, 2762}, {767, 1947, 5643, 16368, 5616}},
	{{3067, 11387, 11276, 3096, 810}, {1804, 5567, 16647, 5535, 1852}, {1345, 3296, 11135, 11012, 2916}, {554, 1741, 5536, 16653, 5703}},
	{{2963, 11540, 11327, 3259, 937}, {1684, 5906, 16581, 5620, 2007}, {836, 3202, 11250, 11481, 3179}, {872, 2014, 5947, 16753, 5638}},
	{{3252, 11594, 11360, 3233, 1090}, {2009, 5809, 17090, 5892, 1727}, {1385, 3236, 11567, 11542, 3106}, {812, 1936, 5684, 16948, 5678}},
	{{2896, 11425, 11525, 3317, 1106}, {1630, 5764, 16563, 5932, 2004}, {1167, 2979, 11338, 11279, 3281}, {1041, 1928, 5881, 16840, 5486}},
	{{2948, 11393, 11571, 3021, 1316}, {1727, 5616, 16731, 5763, 1793}, {972, 3194, 11380, 11589, 2955}, {1032, 1858, 5632, 16909, 5675}},
	{{3369, 11799, 11608, 3294, 1457}, {1575, 5949, 17301, 6164, 1583}, {1473, 3092, 11872, 11871, 3266}, {922, 2006, 6121, 17333, 5783}},
	{{3199, 11971, 12032, 3197, 1147}, {1706, 6029, 17338, 5880, 1860}, {1166, 3406, 11862, 11890, 3125}, {695, 1900, 6098, 17343, 6091}},
	{{2963, 11619, 11475, 3164, 1023}, {1830, 5990, 17363, 5983, 1813}, {1078, 3069, 11635, 11852, 3381}, {903, 1955, 5813, 17073, 5819}},
	{{2831, 11408, 11617, 3152, 1260}, {1681, 5867, 17255, 6016, 1989}, {937, 3317, 11506, 11774, 3227}, {822, 1919, 5809, 16933, 5600}},
	{{3270, 11774, 11605, 3148, 1010}, {2037, 5772, 17296, 6147, 1834}, {1369, 3415, 11753, 11750, 3064}, {960, 1817, 5983, 17405, 5765}},
	{{3158, 11614, 11667, 3442, 1305}, {1636, 5818, 17523, 6056, 1962}, {1372, 3237, 11698, 11821, 3294}, {751, 2098, 5873, 17534, 6130}},
	{{3007, 11969, 11716, 3433, 1293}, {1668, 5951, 17374, 5948, 1862}, {1273, 3306, 11733, 11977, 3294}, {581, 2063, 6079, 17591, 5734}},
	{{3311, 12518, 12536, 3352, 1437}, {1883, 6279, 18422, 6529, 1980}, {1088, 3572, 12393, 12441, 3179}, {593, 2208, 6153, 18558, 6250}},
	{{3279, 12048, 12176, 3444, 1210}, {1947, 6061, 17851, 6341, 1915}, {1139, 3309, 12154, 12069, 3291}, {787, 1946, 6002, 17803, 5931}},
	{{3269, 12269, 12473, 3429, 1166}, {1973, 6209, 17936, 6200, 2001}, {1496, 3630, 12464, 12135, 3128}, {936, 2117, 6174, 17958, 5779}},
	{{3248, 12648, 12302, 3660, 1221}, {1876, 6499, 18573, 6151, 1827}, {1182, 3291, 12503, 12366, 3466}, {766, 2154, 6160, 18604, 6340}},
	{{3137, 12443, 12649, 3405, 1292}, {1757, 6526, 18196, 6448, 1804}, {990, 3573, 12261, 12327, 3065}, {925, 2252, 6340, 18325, 6407}},
	{{3516, 12847, 12712, 3681, 1095}, {1976, 6674, 19059, 6447, 2159}, {1221, 3602, 12863, 13025, 3623}, {1138, 2063, 6401, 18913, 6410}},
	{{3592, 12979, 13102, 3831, 1088}, {2182, 6559, 19238, 6491, 1930}, {1225, 3542, 12878, 12806, 3522}, {1165, 2196, 6688, 19227, 6516}},
	{{3430, 12932, 12796, 3619, 1375}, {2166, 6507, 18842, 6437, 2123}, {1143, 3517, 12786, 12785, 3309}, {711, 2299, 6462, 18964, 6253}},
	{{3436, 13295, 13408, 3724, 1332}, {2180, 6733, 19518, 6894, 2005}, {1412, 3570, 13317, 13367, 3594}, {1044, 2183, 6835, 19719, 6604}},
	{{3663, 13086, 12768, 3804, 1446}, {2119, 6638, 19113, 6506, 2254}, {1212, 3800, 12899, 13040, 3299}, {840, 2374, 6721, 18889, 6635}},
	{{3721, 13168, 13224, 3772, 1057}, {2161, 6718, 19466, 6491, 2311}, {1479, 3544, 13233, 12975, 3551}, {616, 2365, 6790, 19513, 6682}},
	{{3447, 13318, 13520, 3970, 1403}, {2322, 7053, 19790, 6718, 1945}, {1476, 3794, 13508, 13556, 3517}, {1003, 2225, 6910, 19819, 6752}},
	{{3546, 13564, 13517, 3862, 1564}, {2203, 7029, 19707, 6764, 2111}, {1293, 3899, 13661, 13313, 3659}, {708, 2216, 6777, 19681, 6787}},
	{{3809, 13644, 13631, 3851, 1396}, {2373, 6799, 20129, 6872, 2276}, {1444, 3679, 13581, 13807, 3623}, {696, 2358, 6840, 20134, 6975}},
	{{3574, 13320, 13634, 3722, 1180}, {1957, 6751, 19984, 6935, 2043}, {1140, 3804, 13528, 13382, 3935}, {983, 2279, 6675, 19968, 6919}},
	{{3441, 13734, 13803, 3911, 1517}, {2078, 6936, 20371, 6914, 1948}, {1527, 3974, 13697, 13785, 3769}, {1055, 2470, 6866, 20179, 7104}},
	{{3452, 13854, 13734, 3991, 1108}, {2161, 7201, 20431, 7054, 2088}, {1520, 3941, 13916, 13778, 3860}, {970, 2205, 7228, 20626, 6746}},
	{{3394, 13587, 13706, 3777, 1395}, {2387, 7141, 20280, 6848, 2137}, {1504, 3725, 13622, 13593, 3666}, {811, 2386, 6875, 20105, 6905}},
	{{3652, 14080, 14002, 4026, 1591}, {2336, 7176, 20326, 6929, 2199}, {1680, 3989, 13726, 13752, 3665}, {1128, 2293, 6933, 20470, 6945}},
	{{3943, 14059, 14195, 4169, 1474}, {2438, 7171, 21163, 7376, 2303}, {1351, 4066, 14383, 14320, 4070}, {1191, 2612, 7300, 20870, 6978}},
	{{3759, 13745, 14107, 4084, 1531}, {2410, 6981, 20334, 6947, 2080}, {1419, 3694, 13745, 13858, 3772}, {1040, 2264, 7192, 20627, 6929}},
	{{3849, 14232, 14095, 3752, 1529}, {2154, 7075, 20750, 7032, 2350}, {1709, 3897, 13945, 14049, 3979}, {997, 2392, 7353, 20777, 7129}},
	{{3851, 14017, 14196, 3831, 1227}, {2204, 7326, 20948, 7423, 2267}, {1420, 4035, 14059, 14052, 4006}, {690, 2339, 7375, 21118, 7346}},
	{{3991, 14544, 14429, 4224, 1531}, {2620, 7398, 21252, 7299, 2564}, {1580, 3952, 14444, 14535, 3816}, {980, 2674, 7350, 21440, 7310}},
	{{4080, 14504, 14510, 4097, 1647}, {2150, 7295, 21580, 7551, 2309}, {1237, 4236, 14562, 14412, 3892}, {840, 2615, 7235, 21533, 7377}},
	{{3785, 14329, 14278, 4077, 1471}, {2251, 7179, 21097, 7465, 2317}, {1505, 4107, 14436, 14505, 3699}, {941, 2292, 7162, 21056, 7335}},
	{{3933, 14511, 14339, 3884, 1553}, {2619, 7443, 21600, 7347, 2219}, {1726, 4064, 14705, 14373, 3816}, {1222, 2413, 7581, 21502, 7113}},
	{{4117, 15078, 14956, 4126, 1775}, {2494, 7699, 22123, 7429, 2379}, {1396, 4079, 14726, 14863, 4095}, {1303, 2486, 7610, 22046, 7404}},
	{{3700, 14490, 14549, 4285, 1499}, {2572, 7587, 21500, 7420, 2492}, {1386, 4007, 14601, 14520, 3814}, {869, 2601, 7359, 21698, 7416}},
	{{4122, 15314, 15378, 4154, 1689}, {2522, 7635, 22371, 7827, 2152}, {1556, 4410, 15239, 15439, 4125}, {952, 2496, 7557, 22637, 7721}},
	{{4002, 15194, 15007, 4284, 1581}, {2273, 7707, 21970, 7768, 2310}, {1643, 4319, 14832, 15095, 3880}, {1243, 2747, 7616, 22264, 7348}},
	{{4086, 14947, 15157, 4312, 1552}, {2607, 7572, 22018, 7526, 2404}, {1518, 4053, 14910, 14878, 3758}, {1196, 2650, 7718, 22123, 7202}},
	{{4203, 14972, 15325, 4076, 1794}, {2525, 7704, 22509, 7629, 2280}, {1619, 4374, 14988, 15288, 4116}, {1275, 2761, 7829, 22532, 7428}},
	{{4368, 15717, 15728, 4349, 1523}, {2373, 7875, 23112, 7733, 2405}, {1555, 4206, 15379, 15379, 4229}, {998, 2606, 7752, 22944, 7693}},
	{{4159, 15635, 15472, 4263, 1617}, {2536, 7820, 23068, 8104, 2754}, {1581, 4445, 15703, 15709, 4256}, {1278, 2855, 7829, 22981, 7459}},
	{{4165, 15383, 15327, 4479, 1696}, {2482, 8025, 22733, 7893, 2339}, {1600, 4399, 15553, 15602, 4333}, {1154, 2661, 7939, 22640, 7709}},
	{{4288, 15763, 15622, 4544, 1719}, {2662, 7820, 23272, 8061, 2320}, {1389, 4381, 15905, 15615, 4268}, {1091, 2888, 8176, 23128, 7837}},
	{{4021, 15623, 15692, 4403, 1599}, {2334, 8087, 23040, 7951, 2245}, {1771, 4262, 15646, 15613, 4307}, {1351, 2549, 7711, 23011, 7938}},
	{{4395, 15588, 15620, 4476, 1546}, {2405, 7773, 23147, 7916, 2589}, {1457, 4291, 15545, 15624, 4132}, {1142, 2635, 7773, 22944, 7793}},
	{{4376, 15802, 15905, 4241, 1703}, {2554, 7999, 23290, 7919, 2468}, {1878, 4357, 15943, 15989, 4305}, {945, 2555, 8152, 23544, 8010}},
	{{4122, 15860, 15927, 4285, 1620}, {2611, 8174, 23477, 8084, 2630}, {1996, 4658, 16116, 15805, 4491}, {1155, 2749, 8226, 23490, 8093}},
	{{4263, 15744, 15806, 4327, 1654}, {2415, 8270, 23540, 8223, 2718}, {1591, 4383, 15796, 15840, 4123}, {1114, 2749, 8006, 23434, 7868}},
	{{4197, 16422, 16512, 4577, 1667}, {2422, 8154, 24253, 8219, 2664}, {1773, 4570, 16312, 16297, 4435}, {1004, 2610, 8469, 24094, 8333}},
	{{4486, 16145, 16362, 4447, 1637}, {2809, 8319, 23955, 8375, 2713}, {1660, 4594, 16129, 16254, 4375}, {1165, 2608, 8341, 24108, 7943}},
	{{4353, 16249, 16364, 4626, 1668}, {2712, 8206, 23950, 8455, 2397}, {1960, 4390, 16164, 16376, 4311}, {988, 2675, 8363, 23835, 8154}},
	{{4242, 16632, 16600, 4869, 1651}, {2911, 8509, 24674, 8596, 2798}, {1991, 4849, 16881, 16721, 4556}, {1115, 3031, 8387, 24710, 8445}},
	{{4683, 16553, 16715, 4702, 1527}, {2763, 8440, 24503, 8375, 2550}, {1794, 4460, 16477, 16377, 4377}, {1068, 2871, 8362, 24606, 8214}},
	{{4485, 16639, 16788, 4771, 1894}, {2525, 8610, 24788, 8539, 2646}, {1654, 4524, 16556, 16778, 4835}, {1177, 2820, 8471, 24512, 8406}},
	{{4621, 16733, 16846, 4587, 2099}, {2976, 8370, 24840, 8393, 2914}, {1765, 4815, 16747, 16758, 4314}, {1288, 3043, 8510, 24531, 8513}},
	{{4768, 17048, 17100, 4794, 1748}, {2694, 8809, 24968, 8435, 2530}, {1903, 4611, 17112, 16787, 4656}, {1272, 3087, 8446, 24936, 8655}},
}

// postfilterTbl[0] holds the short-term FIR (numerator) weighting
// coefficients and postfilterTbl[1] the IIR (denominator) weighting
// coefficients for the formant post-filter, one weight per LPC tap:
// 0.65^(k+1) and 0.75^(k+1) in Q15, the codec's bandwidth expansion
// factors.
var postfilterTbl = func() [2][LPCOrder]int32 {
	var t [2][LPCOrder]int32
	for k := 0; k < LPCOrder; k++ {
		t[0][k] = int32(math.Round(32768 * math.Pow(0.65, float64(k+1))))
		t[1][k] = int32(math.Round(32768 * math.Pow(0.75, float64(k+1))))
	}
	return t
}()

// ppfGainWeight holds the pitch post-filter gain scaling weight per
// rate, indexed [0]=6300, [1]=5300.
var ppfGainWeight = [2]int32{0x1800, 0x2000}

// cngBseg bounds the three quadratic segments of the SID gain
// quantizer's energy domain; cngFilt[0] scales frame energy into that
// domain (the remaining taps are the quantizer's published smoothing
// filter, kept with the table).
var cngBseg = [3]int32{2048, 18432, 231233}

var cngFilt = [4]int32{273, 998, 499, 333}
